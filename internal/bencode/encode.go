package bencode

import (
	"bytes"
	"sort"
	"strconv"
)

// Encode serialises a value back to bencode. Dictionaries are always emitted with
// their keys in ascending byte order regardless of the order they were decoded in -
// that canonical form is what makes a digest over the result stable, so two dicts
// with the same pairs always encode to the same bytes.
func Encode(v Value) []byte {
	var buf bytes.Buffer
	v.encode_to(&buf)
	return buf.Bytes()
}

func (i Integer) encode_to(buf *bytes.Buffer) {
	buf.WriteByte('i')
	buf.WriteString(strconv.FormatInt(int64(i), 10))
	buf.WriteByte('e')
}

func (s String) encode_to(buf *bytes.Buffer) {
	buf.WriteString(strconv.Itoa(len(s)))
	buf.WriteByte(':')
	buf.Write(s)
}

func (l List) encode_to(buf *bytes.Buffer) {
	buf.WriteByte('l')
	for _, v := range l {
		v.encode_to(buf)
	}
	buf.WriteByte('e')
}

func (d Dict) encode_to(buf *bytes.Buffer) {
	order := make([]int, len(d.keys))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return bytes.Compare(d.keys[order[a]], d.keys[order[b]]) < 0
	})

	buf.WriteByte('d')
	for _, i := range order {
		d.keys[i].encode_to(buf)
		d.values[i].encode_to(buf)
	}
	buf.WriteByte('e')
}
