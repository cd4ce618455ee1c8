package bencode

import (
	"strconv"
)

// Recursive descent over untrusted bytes, tracking a single forward cursor. Dict keys
// are accepted in any order - sorting is an encode-side concern only.

type decoder struct {
	data []byte
	pos  int
}

// Decode parses a single bencoded value from offset 0 and requires it to consume the
// entire input - anything left over is a trailing data error.
func Decode(data []byte) (Value, error) {
	d := decoder{data: data}
	value, err := d.decode_value()
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.data) {
		return nil, d.fail(ErrTrailingData, "input continues past the decoded value")
	}
	return value, nil
}

func (d *decoder) fail(kind error, detail string) error {
	return &DecodeError{Kind: kind, Offset: d.pos, Detail: detail}
}

func (d *decoder) decode_value() (Value, error) {
	if d.pos >= len(d.data) {
		return nil, d.fail(ErrTruncated, "unexpected end of input")
	}

	switch c := d.data[d.pos]; {
	case c == 'i':
		return d.parse_int()
	case c == 'l':
		return d.parse_list()
	case c == 'd':
		return d.parse_dict()
	case c >= '0' && c <= '9':
		return d.parse_string()
	}

	return nil, d.fail(ErrMalformedLength, "unrecognised start token")
}

func (d *decoder) parse_int() (Value, error) {
	start := d.pos
	d.pos++ // consume 'i'

	s := d.pos
	if d.pos < len(d.data) && d.data[d.pos] == '-' {
		d.pos++
	}
	digits := d.pos
	for d.pos < len(d.data) && d.data[d.pos] >= '0' && d.data[d.pos] <= '9' {
		d.pos++
	}

	if d.pos >= len(d.data) {
		return nil, d.fail(ErrTruncated, "integer is missing its 'e' terminator")
	}
	if d.pos == digits {
		return nil, d.fail(ErrMalformedInt, "no number specified")
	}
	if d.data[d.pos] != 'e' {
		return nil, d.fail(ErrMalformedInt, "should start with 'i' and end with 'e'")
	}
	if d.data[digits] == '0' && (d.pos != digits+1 || digits != s) {
		d.pos = start
		return nil, d.fail(ErrMalformedInt, "cannot start with 0 or be negative 0")
	}

	value, err := strconv.ParseInt(string(d.data[s:d.pos]), 10, 64)
	if err != nil {
		d.pos = start
		return nil, d.fail(ErrMalformedInt, "does not fit in 64 bits")
	}

	d.pos++ // consume 'e'
	return Integer(value), nil
}

func (d *decoder) parse_string() (Value, error) {
	start := d.pos
	for d.pos < len(d.data) && d.data[d.pos] >= '0' && d.data[d.pos] <= '9' {
		d.pos++
	}

	if d.pos >= len(d.data) {
		return nil, d.fail(ErrTruncated, "length prefix is missing its separator colon")
	}
	if d.data[start] == '0' && d.pos != start+1 {
		d.pos = start
		return nil, d.fail(ErrMalformedLength, "length starts with 0")
	}
	if d.data[d.pos] != ':' {
		return nil, d.fail(ErrMalformedLength, "missing separator colon")
	}

	length, err := strconv.ParseInt(string(d.data[start:d.pos]), 10, 64)
	if err != nil {
		d.pos = start
		return nil, d.fail(ErrMalformedLength, "length does not fit in 64 bits")
	}

	d.pos++ // consume ':'
	if int64(len(d.data)-d.pos) < length {
		return nil, d.fail(ErrTruncated, "string len does not match length header")
	}

	s := String(d.data[d.pos : d.pos+int(length)])
	d.pos += int(length)
	return s, nil
}

func (d *decoder) parse_list() (Value, error) {
	d.pos++ // consume 'l'
	result := List{}

	for {
		if d.pos >= len(d.data) {
			return nil, d.fail(ErrUnterminated, "list should end with 'e'")
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			return result, nil
		}

		value, err := d.decode_value()
		if err != nil {
			return nil, err
		}
		result = append(result, value)
	}
}

func (d *decoder) parse_dict() (Value, error) {
	d.pos++ // consume 'd'
	result := Dict{}

	for {
		if d.pos >= len(d.data) {
			return nil, d.fail(ErrUnterminated, "dictionary should end with 'e'")
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			return result, nil
		}

		if d.data[d.pos] < '0' || d.data[d.pos] > '9' {
			return nil, d.fail(ErrMalformedLength, "dictionary keys should be byte strings")
		}
		key, err := d.parse_string()
		if err != nil {
			return nil, err
		}

		if d.pos >= len(d.data) || d.data[d.pos] == 'e' {
			return nil, d.fail(ErrUnterminated, "an entry is missing a defined value")
		}
		value, err := d.decode_value()
		if err != nil {
			return nil, err
		}

		result.set(key.(String), value)
	}
}
