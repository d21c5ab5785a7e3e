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
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/minplayer/minplayer/environment"
)

// arrays passed by the core are terminated by an empty entry. the limit
// stops a missing terminator from running off into unrelated memory
const maxArrayEntries = 1024

// maximum length of strings returned by the disk control interface
const maxImagePath = 4096

// writeback copies the answer to a request into core memory. It is called
// with the result of the request once it has been dispatched.
type writeback func(environment.Result)

func noWriteback(environment.Result) {}

// decoder converts raw requests from the core into typed requests.
type decoder struct {
	strings cstrings

	// C callbacks given to the core when a hardware render request is
	// accepted
	framebufferCallback uintptr
	procAddressCallback uintptr
}

func newDecoder() *decoder {
	return &decoder{
		strings: make(cstrings),
	}
}

// decode returns the typed request for the command and a function that
// copies the answer back into core memory. A nil data pointer produces a
// request with nil payload fields.
func (d *decoder) decode(cmd uint32, data unsafe.Pointer) (environment.Request, writeback) {
	id := environment.RequestID(cmd)

	switch id {
	case environment.IDSetRotation:
		var req environment.SetRotation
		if data != nil {
			v := uint(*(*uint32)(data))
			req.Rotation = &v
		}
		return req, noWriteback

	case environment.IDGetOverscan:
		var req environment.GetOverscan
		if data != nil {
			req.Out = new(bool)
		}
		return req, d.writeBool(data, req.Out)

	case environment.IDGetCanDupe:
		var req environment.GetCanDupe
		if data != nil {
			req.Out = new(bool)
		}
		return req, d.writeBool(data, req.Out)

	case environment.IDSetMessage:
		var req environment.SetMessage
		if data != nil {
			m := (*message)(data)
			req.Message = &environment.Message{
				Text:   goString(m.msg),
				Frames: m.frames,
			}
		}
		return req, noWriteback

	case environment.IDShutdown:
		return environment.Shutdown{}, noWriteback

	case environment.IDSetPerformanceLevel:
		var req environment.SetPerformanceLevel
		if data != nil {
			v := uint(*(*uint32)(data))
			req.Level = &v
		}
		return req, noWriteback

	case environment.IDGetSystemDirectory:
		var req environment.GetSystemDirectory
		if data != nil {
			req.Out = new(string)
		}
		return req, d.writeString(data, req.Out)

	case environment.IDGetSaveDirectory:
		var req environment.GetSaveDirectory
		if data != nil {
			req.Out = new(string)
		}
		return req, d.writeString(data, req.Out)

	case environment.IDSetPixelFormat:
		var req environment.SetPixelFormat
		if data != nil {
			v := environment.PixelFormat(*(*uint32)(data))
			req.Format = &v
		}
		return req, noWriteback

	case environment.IDSetInputDescriptors:
		var req environment.SetInputDescriptors
		if data != nil {
			var descs []environment.InputDescriptor
			for i := 0; i < maxArrayEntries; i++ {
				e := (*inputDescriptor)(unsafe.Add(data, uintptr(i)*unsafe.Sizeof(inputDescriptor{})))
				if e.description == nil {
					break
				}
				descs = append(descs, environment.InputDescriptor{
					Port:        e.port,
					Device:      e.device,
					Index:       e.index,
					ID:          e.id,
					Description: goString(e.description),
				})
			}
			req.Descriptors = &descs
		}
		return req, noWriteback

	case environment.IDSetDiskControlInterface:
		var req environment.SetDiskControlInterface
		if data != nil {
			dc := decodeDiskControl((*diskControlCallback)(data))
			req.Control = &dc
		}
		return req, noWriteback

	case environment.IDSetDiskControlExtInterface:
		var req environment.SetDiskControlExtInterface
		if data != nil {
			dc := decodeDiskControlExt((*diskControlExtCallback)(data))
			req.Control = &dc
		}
		return req, noWriteback

	case environment.IDSetHWRender:
		var req environment.SetHWRender
		if data == nil {
			return req, noWriteback
		}
		cb := (*hwRenderCallback)(data)
		hw := decodeHWRender(cb)
		req.Request = &hw
		return req, func(r environment.Result) {
			if r.Succeeded() {
				cb.getCurrentFramebuffer = d.framebufferCallback
				cb.getProcAddress = d.procAddressCallback
			}
		}

	case environment.IDGetVariable:
		var req environment.GetVariable
		if data == nil {
			return req, noWriteback
		}
		v := (*variable)(data)
		req.Key = goString(v.key)
		req.Value = new(string)
		return req, func(r environment.Result) {
			if r.Succeeded() {
				v.value = d.strings.get(*req.Value)
			} else {
				v.value = nil
			}
		}

	case environment.IDSetVariables:
		var req environment.SetVariables
		if data != nil {
			var vars []environment.VariableDefinition
			for i := 0; i < maxArrayEntries; i++ {
				e := (*variable)(unsafe.Add(data, uintptr(i)*unsafe.Sizeof(variable{})))
				if e.key == nil {
					break
				}
				vars = append(vars, environment.VariableDefinition{
					Key:   goString(e.key),
					Value: goString(e.value),
				})
			}
			req.Variables = &vars
		}
		return req, noWriteback

	case environment.IDGetVariableUpdate:
		var req environment.GetVariableUpdate
		if data != nil {
			req.Out = new(bool)
		}
		return req, d.writeBool(data, req.Out)

	case environment.IDSetSupportNoGame:
		var req environment.SetSupportNoGame
		if data != nil {
			v := *(*bool)(data)
			req.Support = &v
		}
		return req, noWriteback

	case environment.IDSetFrameTimeCallback:
		var req environment.SetFrameTimeCallback
		if data != nil {
			cb := (*frameTimeCallback)(data)
			ftc := environment.FrameTimeCallback{
				Reference: cb.reference,
			}
			if fn := cb.callback; fn != 0 {
				ftc.Callback = func(usec int64) {
					purego.SyscallN(fn, uintptr(usec))
				}
			}
			req.Callback = &ftc
		}
		return req, noWriteback

	case environment.IDGetLogInterface:
		return environment.GetLogInterface{}, noWriteback

	case environment.IDSetSystemAVInfo:
		var req environment.SetSystemAVInfo
		if data != nil {
			av := decodeAVInfo((*systemAVInfo)(data))
			req.Info = &av
		}
		return req, noWriteback

	case environment.IDSetControllerInfo:
		var req environment.SetControllerInfo
		if data != nil {
			ports := decodeControllerInfo(data)
			req.Ports = &ports
		}
		return req, noWriteback

	case environment.IDSetGeometry:
		var req environment.SetGeometry
		if data != nil {
			g := decodeGeometry((*gameGeometry)(data))
			req.Geometry = &g
		}
		return req, noWriteback

	case environment.IDGetLanguage:
		var req environment.GetLanguage
		if data != nil {
			req.Out = new(uint)
		}
		return req, d.writeUint(data, req.Out)

	case environment.IDGetAudioVideoEnable:
		var req environment.GetAudioVideoEnable
		if data == nil {
			return req, noWriteback
		}
		req.Out = new(int)
		return req, func(r environment.Result) {
			if r.Succeeded() {
				*(*int32)(data) = int32(*req.Out)
			}
		}

	case environment.IDGetFastforwarding:
		var req environment.GetFastforwarding
		if data != nil {
			req.Out = new(bool)
		}
		return req, d.writeBool(data, req.Out)

	case environment.IDGetTargetRefreshRate:
		var req environment.GetTargetRefreshRate
		if data == nil {
			return req, noWriteback
		}
		req.Out = new(float32)
		return req, func(r environment.Result) {
			if r.Succeeded() {
				*(*float32)(data) = *req.Out
			}
		}

	case environment.IDGetInputBitmasks:
		return environment.GetInputBitmasks{}, noWriteback

	case environment.IDGetCoreOptionsVersion:
		var req environment.GetCoreOptionsVersion
		if data != nil {
			req.Out = new(uint)
		}
		return req, d.writeUint(data, req.Out)

	case environment.IDSetCoreOptionsDisplay:
		var req environment.SetCoreOptionsDisplay
		if data != nil {
			o := (*coreOptionDisplay)(data)
			req.Display = &environment.CoreOptionDisplay{
				Key:     goString(o.key),
				Visible: o.visible,
			}
		}
		return req, noWriteback

	case environment.IDGetDiskControlInterfaceVersion:
		var req environment.GetDiskControlInterfaceVersion
		if data != nil {
			req.Out = new(uint)
		}
		return req, d.writeUint(data, req.Out)

	case environment.IDSetAudioBufferStatusCallback:
		var req environment.SetAudioBufferStatusCallback
		if data != nil {
			var f environment.AudioBufferStatusFunc
			if fn := (*audioBufferStatusCallback)(data).callback; fn != 0 {
				f = func(active bool, occupancy uint, underrunLikely bool) {
					purego.SyscallN(fn, boolArg(active), uintptr(occupancy), boolArg(underrunLikely))
				}
			}
			req.Callback = &f
		}
		return req, noWriteback

	case environment.IDGetThrottleState:
		var req environment.GetThrottleState
		if data == nil {
			return req, noWriteback
		}
		req.Out = &environment.ThrottleState{}
		return req, func(r environment.Result) {
			if r.Succeeded() {
				*(*throttleState)(data) = throttleState{
					mode: uint32(req.Out.Mode),
					rate: req.Out.Rate,
				}
			}
		}
	}

	return environment.Unknown{Cmd: id}, noWriteback
}

func (d *decoder) writeBool(data unsafe.Pointer, v *bool) writeback {
	if data == nil || v == nil {
		return noWriteback
	}
	return func(r environment.Result) {
		if r.Succeeded() {
			*(*bool)(data) = *v
		}
	}
}

func (d *decoder) writeUint(data unsafe.Pointer, v *uint) writeback {
	if data == nil || v == nil {
		return noWriteback
	}
	return func(r environment.Result) {
		if r.Succeeded() {
			*(*uint32)(data) = uint32(*v)
		}
	}
}

func (d *decoder) writeString(data unsafe.Pointer, v *string) writeback {
	if data == nil || v == nil {
		return noWriteback
	}
	return func(r environment.Result) {
		if r.Succeeded() {
			*(**byte)(data) = d.strings.get(*v)
		} else {
			*(**byte)(data) = nil
		}
	}
}

func decodeGeometry(g *gameGeometry) environment.GameGeometry {
	return environment.GameGeometry{
		BaseWidth:   g.baseWidth,
		BaseHeight:  g.baseHeight,
		MaxWidth:    g.maxWidth,
		MaxHeight:   g.maxHeight,
		AspectRatio: g.aspectRatio,
	}
}

func decodeAVInfo(av *systemAVInfo) environment.SystemAVInfo {
	return environment.SystemAVInfo{
		Geometry: decodeGeometry(&av.geometry),
		Timing: environment.SystemTiming{
			FPS:        av.timing.fps,
			SampleRate: av.timing.sampleRate,
		},
	}
}

func decodeControllerInfo(data unsafe.Pointer) []environment.ControllerInfo {
	var ports []environment.ControllerInfo
	for i := 0; i < maxArrayEntries; i++ {
		ci := (*controllerInfo)(unsafe.Add(data, uintptr(i)*unsafe.Sizeof(controllerInfo{})))
		if ci.types == nil {
			break
		}

		var port environment.ControllerInfo
		n := int(ci.numTypes)
		if n > maxArrayEntries {
			n = maxArrayEntries
		}
		for _, t := range unsafe.Slice(ci.types, n) {
			port.Types = append(port.Types, environment.ControllerDescription{
				Description: goString(t.desc),
				ID:          t.id,
			})
		}
		ports = append(ports, port)
	}
	return ports
}

func decodeHWRender(cb *hwRenderCallback) environment.HWRenderRequest {
	hw := environment.HWRenderRequest{
		ContextType:      environment.HWContextType(cb.contextType),
		VersionMajor:     cb.versionMajor,
		VersionMinor:     cb.versionMinor,
		Depth:            cb.depth,
		Stencil:          cb.stencil,
		BottomLeftOrigin: cb.bottomLeftOrigin,
		CacheContext:     cb.cacheContext,
		DebugContext:     cb.debugContext,
	}
	if fn := cb.contextReset; fn != 0 {
		hw.ContextReset = func() {
			purego.SyscallN(fn)
		}
	}
	if fn := cb.contextDestroy; fn != 0 {
		hw.ContextDestroy = func() {
			purego.SyscallN(fn)
		}
	}
	return hw
}

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// the upper bits of a register holding a C bool are undefined
func callBool(fn uintptr, args ...uintptr) bool {
	r, _, _ := purego.SyscallN(fn, args...)
	return r&0xff != 0
}

func callUint(fn uintptr, args ...uintptr) uint {
	r, _, _ := purego.SyscallN(fn, args...)
	return uint(uint32(r))
}

func decodeDiskControl(cb *diskControlCallback) environment.DiskControl {
	var dc environment.DiskControl

	if fn := cb.setEjectState; fn != 0 {
		dc.SetEjectState = func(ejected bool) bool {
			return callBool(fn, boolArg(ejected))
		}
	}
	if fn := cb.getEjectState; fn != 0 {
		dc.GetEjectState = func() bool {
			return callBool(fn)
		}
	}
	if fn := cb.getImageIndex; fn != 0 {
		dc.GetImageIndex = func() uint {
			return callUint(fn)
		}
	}
	if fn := cb.setImageIndex; fn != 0 {
		dc.SetImageIndex = func(index uint) bool {
			return callBool(fn, uintptr(index))
		}
	}
	if fn := cb.getNumImages; fn != 0 {
		dc.GetNumImages = func() uint {
			return callUint(fn)
		}
	}
	if fn := cb.replaceImageIndex; fn != 0 {
		dc.ReplaceImageIndex = func(index uint, path string) bool {
			// an empty path removes the image
			if path == "" {
				return callBool(fn, uintptr(index), 0)
			}
			p := buffer(path)
			gi := &gameInfo{path: &p[0]}
			ok := callBool(fn, uintptr(index), uintptr(unsafe.Pointer(gi)))
			runtime.KeepAlive(p)
			runtime.KeepAlive(gi)
			return ok
		}
	}
	if fn := cb.addImageIndex; fn != 0 {
		dc.AddImageIndex = func() bool {
			return callBool(fn)
		}
	}

	return dc
}

func decodeDiskControlExt(cb *diskControlExtCallback) environment.DiskControl {
	dc := decodeDiskControl(&cb.diskControlCallback)

	if fn := cb.setInitialImage; fn != 0 {
		dc.SetInitialImage = func(index uint, path string) bool {
			p := buffer(path)
			ok := callBool(fn, uintptr(index), uintptr(unsafe.Pointer(&p[0])))
			runtime.KeepAlive(p)
			return ok
		}
	}
	if fn := cb.getImagePath; fn != 0 {
		dc.GetImagePath = imageString(fn)
	}
	if fn := cb.getImageLabel; fn != 0 {
		dc.GetImageLabel = imageString(fn)
	}

	return dc
}

// imageString wraps the disk control functions that fill a caller supplied
// buffer with a string.
func imageString(fn uintptr) func(index uint) (string, bool) {
	return func(index uint) (string, bool) {
		buf := make([]byte, maxImagePath)
		if !callBool(fn, uintptr(index), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)-1)) {
			return "", false
		}
		return goString(&buf[0]), true
	}
}
