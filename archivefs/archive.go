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
	"archive/zip"
	"io"

	"github.com/bodgit/sevenzip"
	"github.com/minplayer/minplayer/curated"
	"github.com/nwaples/rardecode/v2"
)

// Entry is a file inside an archive.
type Entry struct {
	Name  string
	IsDir bool
	Size  int64
}

func (e Entry) String() string {
	return e.Name
}

// archive is implemented by each supported archive type.
type archive interface {
	// entries in the order they are stored in the archive
	entries() ([]Entry, error)

	// extract the named entry to the writer
	extract(name string, w io.Writer) error

	close() error
}

func openArchive(path string, format Format) (archive, error) {
	switch format {
	case FormatZIP:
		r, err := zip.OpenReader(path)
		if err != nil {
			return nil, err
		}
		return &zipArchive{r: r}, nil
	case Format7z:
		r, err := sevenzip.OpenReader(path)
		if err != nil {
			return nil, err
		}
		return &sevenzipArchive{r: r}, nil
	case FormatRAR:
		return &rarArchive{path: path}, nil
	}
	return nil, curated.Errorf(UnsupportedFormat, format)
}

// List returns the entries of the archive at path in the order they are
// stored.
func List(path string) ([]Entry, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}

	a, err := openArchive(path, format)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	defer a.close()

	ents, err := a.entries()
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	return ents, nil
}

type zipArchive struct {
	r *zip.ReadCloser
}

func (a *zipArchive) entries() ([]Entry, error) {
	var ents []Entry
	for _, f := range a.r.File {
		fi := f.FileInfo()
		ents = append(ents, Entry{
			Name:  f.Name,
			IsDir: fi.IsDir(),
			Size:  fi.Size(),
		})
	}
	return ents, nil
}

func (a *zipArchive) extract(name string, w io.Writer) error {
	for _, f := range a.r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		_, err = io.Copy(w, rc)
		return err
	}
	return curated.Errorf(NoEntry, name)
}

func (a *zipArchive) close() error {
	return a.r.Close()
}

type sevenzipArchive struct {
	r *sevenzip.ReadCloser
}

func (a *sevenzipArchive) entries() ([]Entry, error) {
	var ents []Entry
	for _, f := range a.r.File {
		fi := f.FileInfo()
		ents = append(ents, Entry{
			Name:  f.Name,
			IsDir: fi.IsDir(),
			Size:  fi.Size(),
		})
	}
	return ents, nil
}

func (a *sevenzipArchive) extract(name string, w io.Writer) error {
	for _, f := range a.r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		_, err = io.Copy(w, rc)
		return err
	}
	return curated.Errorf(NoEntry, name)
}

func (a *sevenzipArchive) close() error {
	return a.r.Close()
}

// RAR archives are read as a stream so the archive is reopened for each
// operation.
type rarArchive struct {
	path string
}

func (a *rarArchive) walk(f func(h *rardecode.FileHeader, r io.Reader) (bool, error)) error {
	r, err := rardecode.OpenReader(a.path)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		h, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		done, err := f(h, r)
		if err != nil || done {
			return err
		}
	}
}

func (a *rarArchive) entries() ([]Entry, error) {
	var ents []Entry
	err := a.walk(func(h *rardecode.FileHeader, _ io.Reader) (bool, error) {
		ents = append(ents, Entry{
			Name:  h.Name,
			IsDir: h.IsDir,
			Size:  h.UnPackedSize,
		})
		return false, nil
	})
	return ents, err
}

func (a *rarArchive) extract(name string, w io.Writer) error {
	found := false
	err := a.walk(func(h *rardecode.FileHeader, r io.Reader) (bool, error) {
		if h.Name != name {
			return false, nil
		}
		found = true
		_, err := io.Copy(w, r)
		return true, err
	})
	if err != nil {
		return err
	}
	if !found {
		return curated.Errorf(NoEntry, name)
	}
	return nil
}

func (a *rarArchive) close() error {
	return nil
}
