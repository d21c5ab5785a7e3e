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

package pausemenu

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/minplayer/minplayer/alias"
	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/paths"
	"github.com/minplayer/minplayer/persistence"
	"github.com/minplayer/minplayer/player"
)

// SlotCount is the number of save slots offered to the user.
const SlotCount = 8

// MaxDiscs is the largest number of discs read from a playlist.
const MaxDiscs = 9

// the value in the slot tracking file that marks an auto-resume. it is not a
// save slot and is replaced by slot zero when read
const autoResumeMarker = 8

// Session is the save slot and disc state of a game session.
type Session struct {
	ctx  *player.Context
	root paths.Root

	launcherDir string
	slotPath    string

	// directory of the playlist with a trailing separator
	basePath string

	discs []string

	// index into discs of the disc in use. -1 for a single disc game
	disc int

	// currently selected save slot. always in the range 0 to SlotCount-1
	slot int

	// paths of the thumbnail and disc record of the selected slot
	bmpPath string
	txtPath string

	SaveExists    bool
	PreviewExists bool
}

// NewSession prepares the slot and disc state for the game bound to the
// context. The launcher directory is created if it does not exist.
func NewSession(ctx *player.Context, root paths.Root) (*Session, error) {
	if ctx == nil || ctx.Game == nil {
		return nil, curated.Errorf("pausemenu: no game")
	}

	s := &Session{
		ctx:         ctx,
		root:        root,
		launcherDir: root.Launcher(alias.EmuName(ctx.Game.Path)),
		disc:        -1,
	}
	s.slotPath = filepath.Join(s.launcherDir, fmt.Sprintf("%s.txt", ctx.Game.Name))

	if err := os.MkdirAll(s.launcherDir, 0o755); err != nil {
		return nil, curated.Errorf("pausemenu: %v", err)
	}

	if ctx.Game.M3UPath != "" {
		if err := s.readPlaylist(ctx.Game.M3UPath); err != nil {
			logger.Logf(logger.Allow, "pausemenu", "%v", err)
		}
	}

	return s, nil
}

// readPlaylist records the discs in the playlist that exist on disk.
func (s *Session) readPlaylist(m3u string) error {
	s.basePath = filepath.Dir(m3u) + string(filepath.Separator)

	f, err := os.Open(m3u)
	if err != nil {
		return curated.Errorf("playlist: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n ")
		if line == "" {
			continue
		}
		if len(s.discs) >= MaxDiscs {
			logger.Logf(logger.Allow, "pausemenu", "more than %d discs in %s", MaxDiscs, filepath.Base(m3u))
			break
		}

		pth := s.basePath + line
		if _, err := os.Stat(pth); err != nil {
			continue
		}
		if pth == s.ctx.Game.Path {
			s.disc = len(s.discs)
		}
		s.discs = append(s.discs, pth)
	}

	if len(s.discs) > 0 && s.disc < 0 {
		s.disc = 0
	}

	return scanner.Err()
}

// Discs returns the paths of the discs in the playlist.
func (s *Session) Discs() []string {
	return s.discs
}

// Disc returns the index of the selected disc. Returns -1 for a single disc
// game.
func (s *Session) Disc() int {
	return s.disc
}

// CycleDisc changes the selected disc. The disc is not inserted until
// ChangeDisc() is called. Returns false if there are not at least two discs.
func (s *Session) CycleDisc(direction int) bool {
	n := len(s.discs)
	if n < 2 || direction == 0 {
		return false
	}
	s.disc = (s.disc + direction%n + n) % n
	return true
}

// SetDisc selects the disc without inserting it.
func (s *Session) SetDisc(disc int) {
	if disc >= 0 && disc < len(s.discs) {
		s.disc = disc
	}
}

// Slot returns the selected save slot.
func (s *Session) Slot() int {
	return s.slot
}

// CycleSlot changes the selected save slot, wrapping at either end.
func (s *Session) CycleSlot(direction int) {
	s.slot = (s.slot + direction%SlotCount + SlotCount) % SlotCount
}

// leadingInt parses the digits at the start of the string, ignoring leading
// space. Returns zero if there are none.
func leadingInt(str string) int {
	str = strings.TrimLeft(str, " \t\r\n")
	end := 0
	for end < len(str) && str[end] >= '0' && str[end] <= '9' {
		end++
	}
	v, err := strconv.Atoi(str[:end])
	if err != nil {
		return 0
	}
	return v
}

// InitState reads the slot that was last used from the slot tracking file.
// The auto-resume marker and values outside the range of slots are replaced
// by slot zero.
func (s *Session) InitState() {
	if b, err := os.ReadFile(s.slotPath); err == nil {
		s.slot = leadingInt(string(b))
	}
	if s.slot == autoResumeMarker || s.slot < 0 || s.slot >= SlotCount {
		s.slot = 0
	}
	s.SaveExists = false
	s.PreviewExists = false
}

// statePath asks the frontend for the save state path of the selected slot.
// The context's state slot is changed for the duration of the call only.
func (s *Session) statePath() string {
	cb := s.ctx.Callbacks()
	if cb == nil {
		return ""
	}

	last := s.ctx.Flags.StateSlot
	defer func() {
		s.ctx.Flags.StateSlot = last
	}()
	s.ctx.Flags.StateSlot = s.slot

	return cb.StatePath()
}

func exists(pth string) bool {
	if pth == "" {
		return false
	}
	_, err := os.Stat(pth)
	return err == nil
}

// UpdateState recomputes the paths of the selected slot and whether the slot
// has a save state and a thumbnail.
func (s *Session) UpdateState() {
	name := s.ctx.Game.Name
	s.bmpPath = filepath.Join(s.launcherDir, fmt.Sprintf("%s.%d.bmp", name, s.slot))
	s.txtPath = filepath.Join(s.launcherDir, fmt.Sprintf("%s.%d.txt", name, s.slot))

	s.SaveExists = exists(s.statePath())
	s.PreviewExists = s.SaveExists && exists(s.bmpPath)
}

// ThumbnailPath returns the path of the thumbnail for the selected slot.
// UpdateState() must have been called after the slot last changed.
func (s *Session) ThumbnailPath() string {
	return s.bmpPath
}

func (s *Session) writeSlot() {
	err := os.WriteFile(s.slotPath, []byte(strconv.Itoa(s.slot)), 0o644)
	if err != nil {
		logger.Logf(logger.Allow, "pausemenu", "slot: %v", err)
	}
}

// Save writes the save state of the selected slot. The thumbnail may be nil.
func (s *Session) Save(thumbnail image.Image) {
	s.UpdateState()

	if len(s.discs) > 0 {
		rel := strings.TrimPrefix(s.discs[s.disc], s.basePath)
		if err := os.WriteFile(s.txtPath, []byte(rel), 0o644); err != nil {
			logger.Logf(logger.Allow, "pausemenu", "disc record: %v", err)
		}
	}

	if thumbnail != nil {
		if err := writeThumbnail(s.bmpPath, thumbnail); err != nil {
			logger.Logf(logger.Allow, "pausemenu", "%v", err)
		}
	}

	s.ctx.Flags.StateSlot = s.slot
	s.writeSlot()
	if cb := s.ctx.Callbacks(); cb != nil {
		cb.StateWrite()
	}
}

// Load restores the save state of the selected slot. If the state was saved
// with a different disc in use the disc is changed first. Returns false if the
// slot has no save state.
func (s *Session) Load() bool {
	s.UpdateState()
	if !s.SaveExists {
		return false
	}

	cb := s.ctx.Callbacks()

	if len(s.discs) > 0 {
		b, err := os.ReadFile(s.txtPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Logf(logger.Allow, "pausemenu", "disc record: %v", err)
		}
		name := strings.TrimSpace(string(b))
		if name != "" {
			pth := name
			if !filepath.IsAbs(name) {
				pth = s.basePath + name
			}
			if pth != s.discs[s.disc] {
				if cb != nil {
					cb.ChangeDisc(pth)
				}
				for i, d := range s.discs {
					if d == pth {
						s.disc = i
					}
				}
			}
		}
	}

	s.ctx.Flags.StateSlot = s.slot
	s.writeSlot()
	if cb != nil {
		cb.StateRead()
	}
	return true
}

// ChangeDisc inserts the selected disc if it is not the one in use. Returns
// true if the disc was changed.
func (s *Session) ChangeDisc(inUse int) bool {
	if len(s.discs) == 0 || s.disc == inUse {
		return false
	}
	if cb := s.ctx.Callbacks(); cb != nil {
		cb.ChangeDisc(s.discs[s.disc])
	}
	return true
}

// BeforeSleep saves everything needed to resume the game if the device does
// not wake.
func (s *Session) BeforeSleep() {
	if cb := s.ctx.Callbacks(); cb != nil {
		cb.SRAMWrite()
		cb.RTCWrite()
		cb.StateAutosave()
	}
	if err := persistence.WriteAutoResume(s.root, s.ctx.Game.Path); err != nil {
		logger.Logf(logger.Allow, "pausemenu", "auto resume: %v", err)
	}
}

// AfterSleep removes the auto-resume marker and restores the CPU speed.
func (s *Session) AfterSleep() {
	if err := persistence.ClearAutoResume(s.root); err != nil {
		logger.Logf(logger.Allow, "pausemenu", "auto resume: %v", err)
	}
	if cb := s.ctx.Callbacks(); cb != nil {
		cb.SetOverclock(s.ctx.Flags.Overclock)
	}
}
