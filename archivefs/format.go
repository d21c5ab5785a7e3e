// This file is part of Minplayer.
//
// Minplayer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Minplayer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Minplayer.  If not, see <https://www.gnu.org/licenses/>.

package archivefs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format is the type of a file as detected by DetectFormat().
type Format int

// List of valid Format values.
const (
	FormatRaw Format = iota
	FormatZIP
	Format7z
	FormatRAR
)

func (f Format) String() string {
	switch f {
	case FormatZIP:
		return "zip"
	case Format7z:
		return "7z"
	case FormatRAR:
		return "rar"
	}
	return "raw"
}

// IsArchive returns true if the format is an archive format.
func (f Format) IsArchive() bool {
	return f != FormatRaw
}

var (
	magicZIP      = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEmpty = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z       = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicRAR      = []byte{0x52, 0x61, 0x72, 0x21}
)

// ArchiveExtensions lists the file extensions of the supported archive types.
var ArchiveExtensions = [...]string{".ZIP", ".7Z", ".RAR"}

// DetectFormat looks at the first bytes of the file to decide what type of
// file it is. If the magic bytes are not recognised the file extension is
// used.
func DetectFormat(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatRaw, err
	}
	defer f.Close()

	header := make([]byte, 8)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FormatRaw, err
	}

	return detectFormat(header[:n], path), nil
}

func detectFormat(header []byte, path string) Format {
	switch {
	case bytes.HasPrefix(header, magicZIP) || bytes.HasPrefix(header, magicZIPEmpty):
		return FormatZIP
	case bytes.HasPrefix(header, magic7z):
		return Format7z
	case bytes.HasPrefix(header, magicRAR):
		return FormatRAR
	}

	switch strings.ToUpper(filepath.Ext(path)) {
	case ".ZIP":
		return FormatZIP
	case ".7Z":
		return Format7z
	case ".RAR":
		return FormatRAR
	}

	return FormatRaw
}

// TrimArchiveExt removes the file extension of any supported archive type
// from the end of the string.
func TrimArchiveExt(s string) string {
	sext := strings.ToUpper(filepath.Ext(s))
	for _, ext := range ArchiveExtensions {
		if sext == ext {
			return strings.TrimSuffix(s, filepath.Ext(s))
		}
	}
	return s
}

// MatchesExtension returns true if the file name has one of the extensions.
// Extensions are given without the leading dot and are matched without
// regard to case.
func MatchesExtension(name string, extensions []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
