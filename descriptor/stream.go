package descriptor

import (
	"strings"

	"github.com/quartzvm/quartz/errors"
)

// Tag identifies the syntactic class of one descriptor token. Primitive
// tags are the single-letter base type codes; reference tags introduce a
// class name or array shape.
type Tag byte

const (
	TagByte    Tag = 'B'
	TagChar    Tag = 'C'
	TagDouble  Tag = 'D'
	TagFloat   Tag = 'F'
	TagInt     Tag = 'I'
	TagLong    Tag = 'J'
	TagShort   Tag = 'S'
	TagBoolean Tag = 'Z'
	TagVoid    Tag = 'V'
	TagObject  Tag = 'L'
	TagValue   Tag = 'Q'
	TagArray   Tag = '['
)

func (t Tag) String() string {
	return string(byte(t))
}

// IsPrimitive reports whether the tag is a base type code (including void).
func (t Tag) IsPrimitive() bool {
	switch t {
	case TagByte, TagChar, TagDouble, TagFloat, TagInt, TagLong, TagShort, TagBoolean, TagVoid:
		return true
	}
	return false
}

// IsReference reports whether the tag introduces a reference type.
func (t Tag) IsReference() bool {
	return t == TagObject || t == TagValue || t == TagArray
}

// Token is one element of a method descriptor.
type Token struct {
	// Name is the class name for object and value references, or the
	// complete array descriptor text for arrays. Empty for primitives.
	Name string

	Tag Tag

	// NeverNull is set for value references: the Q tag marks the
	// occurrence as statically null-free.
	NeverNull bool

	// Return is set on the final token, the return type.
	Return bool
}

// Stream lazily tokenizes a method descriptor of the form
// '(' parameter* ')' return. Tokens are produced strictly in descriptor
// order; the token carrying Return is the last one.
type Stream struct {
	desc string
	pos  int
	ret  bool
	done bool
}

// NewStream starts tokenizing desc. Only the leading '(' is validated
// here; everything else surfaces from Next.
func NewStream(desc string) (*Stream, error) {
	if len(desc) == 0 || desc[0] != '(' {
		return nil, errors.MalformedDescriptor(desc, 0, "method descriptor must start with '('")
	}
	return &Stream{desc: desc, pos: 1}, nil
}

// Done reports whether the return token has been consumed.
func (s *Stream) Done() bool {
	return s.done
}

// Next returns the next token. After the return token has been produced
// the stream is exhausted and further calls fail.
func (s *Stream) Next() (Token, error) {
	if s.done {
		return Token{}, errors.InvalidInput(errors.PhaseParse, "descriptor stream already consumed")
	}

	if !s.ret {
		if s.pos >= len(s.desc) {
			return Token{}, errors.UnexpectedEnd(s.desc, s.pos)
		}
		if s.desc[s.pos] == ')' {
			s.pos++
			s.ret = true
		}
	}

	tok, err := s.parseType(s.ret)
	if err != nil {
		return Token{}, err
	}

	if s.ret {
		if s.pos != len(s.desc) {
			return Token{}, errors.MalformedDescriptor(s.desc, s.pos, "trailing characters after return type")
		}
		tok.Return = true
		s.done = true
	}
	return tok, nil
}

// parseType consumes one field type. Void is only legal in return
// position.
func (s *Stream) parseType(allowVoid bool) (Token, error) {
	if s.pos >= len(s.desc) {
		return Token{}, errors.UnexpectedEnd(s.desc, s.pos)
	}

	start := s.pos
	c := s.desc[s.pos]
	switch Tag(c) {
	case TagByte, TagChar, TagDouble, TagFloat, TagInt, TagLong, TagShort, TagBoolean:
		s.pos++
		return Token{Tag: Tag(c)}, nil

	case TagVoid:
		if !allowVoid {
			return Token{}, errors.MalformedDescriptor(s.desc, s.pos, "void is only legal as a return type")
		}
		s.pos++
		return Token{Tag: TagVoid}, nil

	case TagObject, TagValue:
		name, err := s.parseClassName()
		if err != nil {
			return Token{}, err
		}
		return Token{Tag: Tag(c), Name: name, NeverNull: Tag(c) == TagValue}, nil

	case TagArray:
		for s.pos < len(s.desc) && s.desc[s.pos] == '[' {
			s.pos++
		}
		// The whole array descriptor is one reference name; element
		// types are not resolved individually.
		if _, err := s.parseType(false); err != nil {
			return Token{}, err
		}
		return Token{Tag: TagArray, Name: s.desc[start:s.pos]}, nil
	}

	return Token{}, errors.InvalidTag(s.desc, s.pos, c)
}

// parseClassName consumes the name between the current tag byte and the
// terminating ';'.
func (s *Stream) parseClassName() (string, error) {
	s.pos++ // tag byte
	end := strings.IndexByte(s.desc[s.pos:], ';')
	if end < 0 {
		return "", errors.MalformedDescriptor(s.desc, s.pos, "unterminated class name")
	}
	if end == 0 {
		return "", errors.MalformedDescriptor(s.desc, s.pos, "empty class name")
	}
	name := s.desc[s.pos : s.pos+end]
	s.pos += end + 1
	return name, nil
}

// HasNeverNullReturn reports whether the return type token of desc
// carries the never-null value marker. It inspects raw text only, so it
// works even when the return class has not been loaded and its wrapper
// state cannot be read off a resolved type.
func HasNeverNullReturn(desc string) bool {
	i := strings.IndexByte(desc, ')')
	return i >= 0 && i+1 < len(desc) && desc[i+1] == byte(TagValue)
}
