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

package persistence

import (
	"errors"
	"io"
	"os"

	"github.com/minplayer/minplayer/logger"
)

// MemoryType identifies a block of core memory.
type MemoryType uint

// List of memory types that are persisted.
const (
	SaveRAM MemoryType = 0
	RTC     MemoryType = 1
)

func (m MemoryType) String() string {
	switch m {
	case SaveRAM:
		return "sram"
	case RTC:
		return "rtc"
	}
	return "memory"
}

// Memory is implemented by a core that exposes blocks of its memory.
type Memory interface {
	// the size of the memory block in bytes. zero if the core does not have
	// memory of that type
	MemorySize(memType MemoryType) int

	// the memory block itself. the slice aliases the core's memory
	MemoryData(memType MemoryType) []byte
}

// block returns the memory block of the type, or a result explaining why it
// is not available.
func block(memType MemoryType, mem Memory) ([]byte, Result) {
	if mem == nil {
		return nil, NoSupport
	}
	size := mem.MemorySize(memType)
	if size <= 0 {
		return nil, NoSupport
	}
	data := mem.MemoryData(memType)
	if data == nil {
		return nil, NullPointer
	}
	if len(data) > size {
		data = data[:size]
	}
	return data, OK
}

// Read the file at path into the core's memory. A file shorter than the
// memory block is not an error; the remainder of the block is left untouched.
func Read(path string, memType MemoryType, mem Memory) Result {
	data, res := block(memType, mem)
	if res != OK {
		return res
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileNotFound
		}
		logger.Logf(logger.Allow, "persistence", "%s: %v", memType, err)
		return FileError
	}
	defer f.Close()

	_, err = io.ReadFull(f, data)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		logger.Logf(logger.Allow, "persistence", "%s: %v", memType, err)
		return FileError
	}

	return OK
}

// Write the core's memory to the file at path.
func Write(path string, memType MemoryType, mem Memory) Result {
	data, res := block(memType, mem)
	if res != OK {
		return res
	}

	f, err := os.Create(path)
	if err != nil {
		logger.Logf(logger.Allow, "persistence", "%s: %v", memType, err)
		return FileError
	}

	n, err := f.Write(data)
	if err != nil || n != len(data) {
		_ = f.Close()
		logger.Logf(logger.Allow, "persistence", "%s: short write to %s", memType, path)
		return FileError
	}

	if err := f.Close(); err != nil {
		logger.Logf(logger.Allow, "persistence", "%s: %v", memType, err)
		return FileError
	}

	return OK
}

// ReadSRAM reads battery backed RAM from the file at path.
func ReadSRAM(path string, mem Memory) Result {
	return Read(path, SaveRAM, mem)
}

// WriteSRAM writes battery backed RAM to the file at path.
func WriteSRAM(path string, mem Memory) Result {
	return Write(path, SaveRAM, mem)
}

// ReadRTC reads the real time clock from the file at path.
func ReadRTC(path string, mem Memory) Result {
	return Read(path, RTC, mem)
}

// WriteRTC writes the real time clock to the file at path.
func WriteRTC(path string, mem Memory) Result {
	return Write(path, RTC, mem)
}
