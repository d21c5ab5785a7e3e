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

package libretro

import (
	"runtime"
	"strings"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/minplayer/minplayer/curated"
	"github.com/minplayer/minplayer/environment"
	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/persistence"
	"github.com/minplayer/minplayer/player"
)

// SystemInfo describes a core.
type SystemInfo struct {
	Name         string
	Version      string
	Extensions   []string
	NeedFullPath bool
	BlockExtract bool
}

// Core is an emulation core loaded from a shared object.
type Core struct {
	path   string
	handle uintptr

	// the game info passed to retro_load_game(). some cores retain the
	// pointers so the values must be kept alive until the game is unloaded
	game     *gameInfo
	gameData []byte
	gamePath []byte

	retroSetEnvironment          func(cb uintptr)
	retroSetVideoRefresh         func(cb uintptr)
	retroSetAudioSample          func(cb uintptr)
	retroSetAudioSampleBatch     func(cb uintptr)
	retroSetInputPoll            func(cb uintptr)
	retroSetInputState           func(cb uintptr)
	retroInit                    func()
	retroDeinit                  func()
	retroAPIVersion              func() uint32
	retroGetSystemInfo           func(info *systemInfo)
	retroGetSystemAVInfo         func(info *systemAVInfo)
	retroSetControllerPortDevice func(port uint32, device uint32)
	retroReset                   func()
	retroRun                     func()
	retroSerializeSize           func() uintptr
	retroSerialize               func(data unsafe.Pointer, size uintptr) bool
	retroUnserialize             func(data unsafe.Pointer, size uintptr) bool
	retroLoadGame                func(game *gameInfo) bool
	retroUnloadGame              func()
	retroGetMemoryData           func(id uint32) unsafe.Pointer
	retroGetMemorySize           func(id uint32) uintptr
}

// Sentinel error patterns returned by Load.
const (
	CoreOpen          = "libretro: cannot open core: %v"
	CoreMissingSymbol = "libretro: core is missing symbol: %s"
	CoreLoadGame      = "libretro: core failed to load game: %s"
)

// Load opens the shared object at path and binds every function of the core
// ABI. An error naming the first missing symbol is returned if the shared
// object is not a complete core.
func Load(path string) (*Core, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, curated.Errorf(CoreOpen, err)
	}

	c := &Core{
		path:   path,
		handle: handle,
	}

	symbols := []struct {
		name string
		fptr any
	}{
		{"retro_set_environment", &c.retroSetEnvironment},
		{"retro_set_video_refresh", &c.retroSetVideoRefresh},
		{"retro_set_audio_sample", &c.retroSetAudioSample},
		{"retro_set_audio_sample_batch", &c.retroSetAudioSampleBatch},
		{"retro_set_input_poll", &c.retroSetInputPoll},
		{"retro_set_input_state", &c.retroSetInputState},
		{"retro_init", &c.retroInit},
		{"retro_deinit", &c.retroDeinit},
		{"retro_api_version", &c.retroAPIVersion},
		{"retro_get_system_info", &c.retroGetSystemInfo},
		{"retro_get_system_av_info", &c.retroGetSystemAVInfo},
		{"retro_set_controller_port_device", &c.retroSetControllerPortDevice},
		{"retro_reset", &c.retroReset},
		{"retro_run", &c.retroRun},
		{"retro_serialize_size", &c.retroSerializeSize},
		{"retro_serialize", &c.retroSerialize},
		{"retro_unserialize", &c.retroUnserialize},
		{"retro_load_game", &c.retroLoadGame},
		{"retro_unload_game", &c.retroUnloadGame},
		{"retro_get_memory_data", &c.retroGetMemoryData},
		{"retro_get_memory_size", &c.retroGetMemorySize},
	}

	for _, s := range symbols {
		sym, err := purego.Dlsym(handle, s.name)
		if err != nil || sym == 0 {
			_ = purego.Dlclose(handle)
			return nil, curated.Errorf(CoreMissingSymbol, s.name)
		}
		purego.RegisterFunc(s.fptr, sym)
	}

	logger.Logf(logger.Allow, "libretro", "loaded core %s", path)

	return c, nil
}

// Close releases the shared object. The core must have been deinitialised.
func (c *Core) Close() error {
	if c.handle == 0 {
		return nil
	}
	err := purego.Dlclose(c.handle)
	c.handle = 0
	if err != nil {
		return curated.Errorf("libretro: %v", err)
	}
	return nil
}

// Path returns the path of the shared object.
func (c *Core) Path() string {
	return c.path
}

// APIVersion returns the ABI version reported by the core.
func (c *Core) APIVersion() uint {
	return uint(c.retroAPIVersion())
}

// SystemInfo returns the core's description of itself.
func (c *Core) SystemInfo() SystemInfo {
	var si systemInfo
	c.retroGetSystemInfo(&si)

	info := SystemInfo{
		Name:         goString(si.libraryName),
		Version:      goString(si.libraryVersion),
		NeedFullPath: si.needFullpath,
		BlockExtract: si.blockExtract,
	}
	for _, e := range strings.Split(goString(si.validExtensions), "|") {
		if e = strings.TrimSpace(e); e != "" {
			info.Extensions = append(info.Extensions, strings.ToLower(e))
		}
	}

	return info
}

// SystemAVInfo returns the geometry and timing of the loaded game.
func (c *Core) SystemAVInfo() environment.SystemAVInfo {
	var av systemAVInfo
	c.retroGetSystemAVInfo(&av)
	return decodeAVInfo(&av)
}

// Init initialises the core. A Bridge must be attached first.
func (c *Core) Init() {
	c.retroInit()
}

// Deinit is the counterpart to Init().
func (c *Core) Deinit() {
	c.retroDeinit()
}

// Reset the running game.
func (c *Core) Reset() {
	c.retroReset()
}

// Run the core for one frame.
func (c *Core) Run() {
	c.retroRun()
}

// SetControllerPortDevice plugs a device type into a port.
func (c *Core) SetControllerPortDevice(port uint, device uint) {
	c.retroSetControllerPortDevice(uint32(port), uint32(device))
}

// LoadGame passes the game to the core. The data of the game is only passed
// if the core does not need the full path.
func (c *Core) LoadGame(game *player.Game, needFullPath bool) error {
	path := game.LoadPath()

	c.gamePath = buffer(path)
	c.game = &gameInfo{
		path: &c.gamePath[0],
	}

	if !needFullPath && len(game.Data) > 0 {
		c.gameData = game.Data
		c.game.data = unsafe.Pointer(&c.gameData[0])
		c.game.size = uintptr(len(c.gameData))
	}

	if !c.retroLoadGame(c.game) {
		c.game = nil
		c.gameData = nil
		c.gamePath = nil
		return curated.Errorf(CoreLoadGame, path)
	}

	logger.Logf(logger.Allow, "libretro", "loaded game %s", path)

	return nil
}

// UnloadGame is the counterpart to LoadGame().
func (c *Core) UnloadGame() {
	if c.game == nil {
		return
	}
	c.retroUnloadGame()
	runtime.KeepAlive(c.game)
	c.game = nil
	c.gameData = nil
	c.gamePath = nil
}

// MemorySize implements the persistence.Memory interface.
func (c *Core) MemorySize(t persistence.MemoryType) int {
	return int(c.retroGetMemorySize(uint32(t)))
}

// MemoryData implements the persistence.Memory interface. The returned slice
// refers to the core's memory.
func (c *Core) MemoryData(t persistence.MemoryType) []byte {
	sz := c.MemorySize(t)
	if sz <= 0 {
		return nil
	}
	p := c.retroGetMemoryData(uint32(t))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), sz)
}

// SerializeSize implements the persistence.Serializer interface.
func (c *Core) SerializeSize() int {
	return int(c.retroSerializeSize())
}

// Serialize implements the persistence.Serializer interface.
func (c *Core) Serialize(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return c.retroSerialize(unsafe.Pointer(&data[0]), uintptr(len(data)))
}

// Unserialize implements the persistence.Serializer interface.
func (c *Core) Unserialize(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return c.retroUnserialize(unsafe.Pointer(&data[0]), uintptr(len(data)))
}
