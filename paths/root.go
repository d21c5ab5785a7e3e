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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSDCard is the mount point of the SD card if the SDCARD_PATH
// environment variable is not set.
const DefaultSDCard = "/mnt/SDCARD"

// AutoResumeSlot is the save state slot used for the state written before
// sleep and on quit. It is never offered to the user as a save slot.
const AutoResumeSlot = 9

// Root describes the directory layout of the SD card.
type Root struct {
	SDCard   string
	Platform string
}

// NewRoot returns the Root for the platform. The SD card location is taken
// from the SDCARD_PATH environment variable if it is set.
func NewRoot(platform string) Root {
	sd := os.Getenv("SDCARD_PATH")
	if sd == "" {
		sd = DefaultSDCard
	}
	return Root{SDCard: sd, Platform: platform}
}

// Roms returns the base directory for ROM folders.
func (r Root) Roms() string {
	return filepath.Join(r.SDCard, "Roms")
}

// Userdata returns the platform specific user data directory.
func (r Root) Userdata() string {
	return filepath.Join(r.SDCard, ".userdata", r.Platform)
}

// SharedUserdata returns the user data directory shared by all platforms.
func (r Root) SharedUserdata() string {
	return filepath.Join(r.SDCard, ".userdata", "shared")
}

// System returns the platform's system directory.
func (r Root) System() string {
	return filepath.Join(r.SDCard, ".system", r.Platform)
}

// CommonSystem returns the system directory shared by all platforms.
func (r Root) CommonSystem() string {
	return filepath.Join(r.SDCard, ".system", "common")
}

// Saves returns the directory for battery saves of the emulator tag.
func (r Root) Saves(tag string) string {
	return filepath.Join(r.SDCard, "Saves", tag)
}

// Bios returns the base BIOS directory.
func (r Root) Bios() string {
	return filepath.Join(r.SDCard, "Bios")
}

// States returns the directory for save states and config files of the
// emulator tag when run with the named core.
func (r Root) States(tag string, core string) string {
	return filepath.Join(r.Userdata(), fmt.Sprintf("%s-%s", tag, core))
}

// Launcher returns the directory for per-game launcher data (slot tracking,
// previews) of the emulator tag.
func (r Root) Launcher(tag string) string {
	return filepath.Join(r.SharedUserdata(), ".launcher", tag)
}

// AutoResume returns the path to the auto-resume marker file.
func (r Root) AutoResume() string {
	return filepath.Join(r.SharedUserdata(), ".minui", "auto_resume.txt")
}

// ResumeSlot returns the path of the file in which the launcher asks for a
// save state slot to be loaded when the game starts.
func (r Root) ResumeSlot() string {
	return filepath.Join(r.SharedUserdata(), ".minui", "resume_slot.txt")
}

// ChangeDisc returns the path of the file that tells the launcher which disc
// of a multi-disc game was last inserted.
func (r Root) ChangeDisc() string {
	return filepath.Join(r.SharedUserdata(), ".minui", "change_disc.txt")
}

// SimpleMode returns the path of the file whose presence enables the
// simplified menus.
func (r Root) SimpleMode() string {
	return filepath.Join(r.SharedUserdata(), ".minui", "enable-simple-mode")
}

// Relative returns the path with the SD card prefix removed.
func (r Root) Relative(path string) string {
	return strings.TrimPrefix(path, r.SDCard)
}

// SRAM returns the path of the battery RAM file for the game.
func SRAM(savesDir string, game string) string {
	return filepath.Join(savesDir, fmt.Sprintf("%s.sav", game))
}

// RTC returns the path of the real-time clock file for the game.
func RTC(savesDir string, game string) string {
	return filepath.Join(savesDir, fmt.Sprintf("%s.rtc", game))
}

// State returns the path of the save state file for the game and slot.
func State(statesDir string, game string, slot int) string {
	return filepath.Join(statesDir, fmt.Sprintf("%s.st%d", game, slot))
}

// Config returns the path of the config file. An empty game name returns the
// path of the console-wide config. The device tag is optional.
func Config(configDir string, game string, deviceTag string) string {
	var suffix string
	if deviceTag != "" {
		suffix = fmt.Sprintf("-%s", deviceTag)
	}
	if game == "" {
		return filepath.Join(configDir, fmt.Sprintf("player%s.cfg", suffix))
	}
	return filepath.Join(configDir, fmt.Sprintf("%s%s.cfg", game, suffix))
}

// BiosDir returns the tag specific BIOS directory if it contains any files,
// otherwise the base BIOS directory.
func BiosDir(base string, tag string) string {
	tagDir := filepath.Join(base, tag)
	entries, err := os.ReadDir(tagDir)
	if err == nil {
		for _, e := range entries {
			if !e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
				return tagDir
			}
		}
	}
	return base
}
