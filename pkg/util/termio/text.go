// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

// FormattedText represents a chunk of text with an optional ANSI format
// applied to it. Clip and Pad are value-returning (not mutating), to
// match how FormattedTable.Print reassigns the result of each in place.
type FormattedText struct {
	// escape is the format to apply to this text, or nil for none.
	escape *AnsiEscape
	text   []rune
}

// NewText constructs an unformatted chunk of text.
func NewText(text string) FormattedText {
	return FormattedText{nil, []rune(text)}
}

// NewFormattedText constructs a chunk of text carrying the given format.
func NewFormattedText(text string, escape AnsiEscape) FormattedText {
	return FormattedText{&escape, []rune(text)}
}

// NewColouredText constructs a chunk of text in the given foreground
// colour.
func NewColouredText(text string, colour uint) FormattedText {
	escape := NewAnsiEscape().FgColour(colour)
	return FormattedText{&escape, []rune(text)}
}

// Len returns the number of characters (runes) in this chunk, excluding
// any formatting escape bytes.
func (p FormattedText) Len() uint {
	return uint(len(p.text))
}

// Clip truncates this chunk to the rune range [start,end), clamped to
// its actual length, and returns the result.
func (p FormattedText) Clip(start, end uint) FormattedText {
	n := p.Len()

	switch {
	case start >= n:
		return FormattedText{p.escape, nil}
	case end >= n:
		return FormattedText{p.escape, p.text[start:]}
	default:
		return FormattedText{p.escape, p.text[start:end]}
	}
}

// Pad right-pads this chunk with spaces up to width runes, returning the
// result unchanged if it is already at least that long.
func (p FormattedText) Pad(width uint) FormattedText {
	n := p.Len()
	if n >= width {
		return p
	}

	padded := make([]rune, width)
	copy(padded, p.text)

	for i := n; i < width; i++ {
		padded[i] = ' '
	}

	return FormattedText{p.escape, padded}
}

// Bytes returns the ANSI-formatted byte representation of this chunk,
// applying and then resetting its escape if one is set.
func (p FormattedText) Bytes() []byte {
	if p.escape == nil {
		return []byte(string(p.text))
	}

	out := []byte(p.escape.Build())
	out = append(out, []byte(string(p.text))...)

	return append(out, []byte(ResetAnsiEscape().Build())...)
}
