/*
Package ini reads INI-style configuration text into a queryable document
and converts node values to and from typed Go values.

# Format

The format is line oriented. Lines are separated by '\n'; a ';' and
everything after it on the same line is a comment. Blank lines are ignored.

	; global nodes live in the section named ""
	name = demo

	[server]
	host = localhost ; a trailing comment
	port = 8080

A line whose first non-blank character is '[' opens a section named by the
trimmed text between '[' and ']'. Any other line is a node: the name is the
trimmed text before the first '=' and the value is everything after it.
Sections are not nested, values do not span lines and there are no escape
sequences. Opening the same section twice appends to it.

# Documents

Parse and ParseStructure build a *Structure, which maps each section name
to its nodes in the order they were read:

	s, err := ini.ParseStructure(text)
	if err != nil {
		// handle error
	}
	nodes, err := s.AllNodesOf("server")

Node values are raw text until read with a Deserializer. Get is checked at
compile time: the deserializer must produce exactly the requested type.

	port, err := ini.Get(node, ini.U16Deserializer{})
	host, err := ini.Get(node, ini.StringDeserializer{Mode: ini.ModeTrim})

GetAs reads through a deserializer declared for another type. It succeeds
only when the deserializer allows casting, as StringDeserializer does:

	type Hostname string
	h, err := ini.GetAs[Hostname](node, ini.StringDeserializer{Mode: ini.ModeTrim})

Set and NewValueNode write typed values back through a Serializer.
Numeric deserializers parse 64-bit decimal literals and narrow the result
with Go conversion rules, so out-of-range values wrap.

# Struct mapping

Unmarshal and Marshal map documents onto structs. Struct-typed (and
string-keyed map) fields correspond to sections; other fields of the
outer struct correspond to the nodes before the first header. Names come
from the `ini:"name"` tag or the field name and match case-insensitively,
with '-' matching '_', unless the CaseSensitive option is given. Slice
fields collect every node of the same name; other fields take the last one.
String values are trimmed unless WithMode(ModeNone) is given, so Unmarshal
reads back what Marshal writes.

	type Config struct {
		Name   string `ini:"name"`
		Server struct {
			Host string `ini:"host"`
			Port uint16 `ini:"port"`
		} `ini:"server"`
	}

	var cfg Config
	if err := ini.Unmarshal(data, &cfg); err != nil {
		// handle error
	}

# Errors

Every failure is fail-fast and typed. Errors are *Error values carrying a
Kind and, when produced while parsing, the line number; use errors.Is with
the Err* sentinels to test for a kind.
*/
package ini
