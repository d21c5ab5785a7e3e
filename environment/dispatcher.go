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

package environment

import (
	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/notifications"
)

// State is the session state that the dispatcher's handlers may change.
// Every pointer field must be non-nil. The interface fields may be nil, in
// which case requests that need them fail.
type State struct {
	Video       *VideoState
	AV          *AVState
	Renderer    *Renderer
	PixelFormat *PixelFormat
	Throttle    *ThrottleInfo
	Controllers *Controllers
	DiskControl *DiskControl

	AudioBufferStatus *AudioBufferStatusFunc

	// copy of an accepted hardware render request. the ContextType field is
	// HWContextNone until a request is accepted
	HWRender *HWRenderRequest

	// set by the shutdown request
	Quit *bool

	SystemDirectory string
	SaveDirectory   string

	Reinit    ReinitFunc
	Pipeline  HWRenderer
	Variables Variables
	Notify    notifications.Notify
}

// Handler resolves a single request.
type Handler func(req Request) Result

// Dispatcher routes requests to handlers through a lookup table built when
// the dispatcher is created.
type Dispatcher struct {
	state State
	table map[RequestID]Handler

	// log every request and its result
	Verbose logger.Verbose
}

// bind adapts a handler for a concrete request type to the Handler type. A
// request of the wrong type resolves to Failure.
func bind[T Request](f func(T) Result) Handler {
	return func(req Request) Result {
		r, ok := req.(T)
		if !ok {
			return Failure
		}
		return f(r)
	}
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher type.
func NewDispatcher(state State) *Dispatcher {
	d := &Dispatcher{
		state: state,
	}
	s := &d.state

	d.table = map[RequestID]Handler{
		IDSetRotation: bind(func(r SetRotation) Result {
			res := HandleSetRotation(s.Video, r)
			if res == Success {
				logger.Logf(&d.Verbose, "environment", "rotation: %s", RotationDescription(s.Video.Rotation))
			}
			return res
		}),
		IDGetOverscan: bind(func(r GetOverscan) Result {
			return putBool(r.Out, true)
		}),
		IDGetCanDupe: bind(func(r GetCanDupe) Result {
			return putBool(r.Out, true)
		}),
		IDSetMessage: bind(func(r SetMessage) Result {
			if r.Message == nil {
				return Failure
			}
			logger.Logf(logger.Allow, "core", "%s", r.Message.Text)
			if s.Notify != nil {
				if err := s.Notify.Notify(notifications.NotifyCoreMessage, r.Message.Text); err != nil {
					logger.Logf(logger.Allow, "environment", "%v", err)
				}
			}
			return Success
		}),
		IDShutdown: bind(func(r Shutdown) Result {
			*s.Quit = true
			return Success
		}),
		IDSetPerformanceLevel: bind(func(r SetPerformanceLevel) Result {
			if r.Level == nil {
				return Failure
			}
			logger.Logf(&d.Verbose, "environment", "performance level: %d", *r.Level)
			return Success
		}),
		IDGetSystemDirectory: bind(func(r GetSystemDirectory) Result {
			return HandleGetDirectory(s.SystemDirectory, r.Out)
		}),
		IDSetPixelFormat: bind(func(r SetPixelFormat) Result {
			res := HandleSetPixelFormat(s.PixelFormat, r)
			if res == Success {
				logger.Logf(&d.Verbose, "environment", "pixel format: %s", *s.PixelFormat)
			}
			return res
		}),
		IDSetInputDescriptors: bind(func(r SetInputDescriptors) Result {
			if r.Descriptors == nil {
				return Failure
			}
			s.Controllers.Descriptors = append(s.Controllers.Descriptors[:0], *r.Descriptors...)
			return Success
		}),
		IDSetDiskControlInterface: bind(func(r SetDiskControlInterface) Result {
			return HandleSetDiskControlInterface(s.DiskControl, r)
		}),
		IDSetHWRender: bind(func(r SetHWRender) Result {
			res := HandleSetHWRender(s.Pipeline, s.HWRender, r)
			if r.Request != nil {
				logger.Logf(logger.Allow, "environment", "hardware render request for %s %d.%d: %s",
					r.Request.ContextType, r.Request.VersionMajor, r.Request.VersionMinor, res)
			}
			return res
		}),
		IDGetVariable: bind(func(r GetVariable) Result {
			return HandleGetVariable(s.Variables, r)
		}),
		IDSetVariables: bind(func(r SetVariables) Result {
			return HandleSetVariables(s.Variables, r)
		}),
		IDGetVariableUpdate: bind(func(r GetVariableUpdate) Result {
			return HandleGetVariableUpdate(s.Variables, r)
		}),
		IDSetSupportNoGame: bind(func(r SetSupportNoGame) Result {
			if r.Support == nil {
				return Failure
			}
			return Success
		}),
		IDSetFrameTimeCallback: bind(func(r SetFrameTimeCallback) Result {
			return HandleSetFrameTimeCallback(s.Video, r)
		}),
		IDGetSaveDirectory: bind(func(r GetSaveDirectory) Result {
			return HandleGetDirectory(s.SaveDirectory, r.Out)
		}),
		IDSetSystemAVInfo: bind(func(r SetSystemAVInfo) Result {
			return HandleSetSystemAVInfo(s.Video, s.AV, s.Renderer, s.Reinit, r)
		}),
		IDSetControllerInfo: bind(func(r SetControllerInfo) Result {
			return HandleSetControllerInfo(s.Controllers, r)
		}),
		IDSetGeometry: bind(func(r SetGeometry) Result {
			return HandleSetGeometry(s.Video, s.AV, s.Renderer, r)
		}),
		IDGetLanguage: bind(func(r GetLanguage) Result {
			return putUint(r.Out, LanguageEnglish)
		}),
		IDGetAudioVideoEnable: bind(HandleGetAudioVideoEnable),
		IDGetFastforwarding: bind(func(r GetFastforwarding) Result {
			return HandleGetFastforwarding(s.Throttle, r)
		}),
		IDGetTargetRefreshRate: bind(func(r GetTargetRefreshRate) Result {
			return HandleGetTargetRefreshRate(s.AV, r)
		}),
		IDGetInputBitmasks: bind(func(r GetInputBitmasks) Result {
			return Success
		}),
		IDGetCoreOptionsVersion: bind(func(r GetCoreOptionsVersion) Result {
			// version zero means the core falls back to the variables interface
			return putUint(r.Out, 0)
		}),
		IDSetCoreOptionsDisplay: bind(func(r SetCoreOptionsDisplay) Result {
			return HandleSetCoreOptionsDisplay(s.Variables, r)
		}),
		IDGetDiskControlInterfaceVersion: bind(func(r GetDiskControlInterfaceVersion) Result {
			return putUint(r.Out, 1)
		}),
		IDSetDiskControlExtInterface: bind(func(r SetDiskControlExtInterface) Result {
			return HandleSetDiskControlExtInterface(s.DiskControl, r)
		}),
		IDSetAudioBufferStatusCallback: bind(func(r SetAudioBufferStatusCallback) Result {
			return HandleSetAudioBufferStatusCallback(s.AudioBufferStatus, r)
		}),
		IDGetThrottleState: bind(func(r GetThrottleState) Result {
			return HandleGetThrottleState(s.Throttle, r)
		}),
	}

	return d
}

// Handle replaces the handler for a request ID. A nil handler removes the
// entry so that the request resolves to Unhandled.
func (d *Dispatcher) Handle(id RequestID, h Handler) {
	if h == nil {
		delete(d.table, id)
		return
	}
	d.table[id] = h
}

// Dispatch resolves the request with the handler registered for its ID.
func (d *Dispatcher) Dispatch(req Request) Result {
	if req == nil {
		return Unhandled
	}

	h, ok := d.table[req.ID()]
	if !ok {
		logger.Logf(&d.Verbose, "environment", "unhandled request: %s", req.ID())
		return Unhandled
	}

	res := h(req)
	logger.Logf(&d.Verbose, "environment", "%s: %s", req.ID(), res)
	return res
}
