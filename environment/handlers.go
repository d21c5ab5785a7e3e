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

// HandleSetRotation stores the requested rotation. Values outside the range
// 0 to 3 are rejected and the video state is not changed.
func HandleSetRotation(video *VideoState, req SetRotation) Result {
	if req.Rotation == nil {
		return Failure
	}
	if *req.Rotation > 3 {
		return Failure
	}
	video.Rotation = *req.Rotation
	return Success
}

// HandleSetPixelFormat stores the requested pixel format if it is supported.
func HandleSetPixelFormat(format *PixelFormat, req SetPixelFormat) Result {
	if req.Format == nil {
		return Failure
	}
	if !req.Format.Valid() {
		return Failure
	}
	*format = *req.Format
	return Success
}

// HandleSetGeometry updates the geometry and aspect ratio of the core and
// invalidates the software renderer's layout.
func HandleSetGeometry(video *VideoState, av *AVState, renderer *Renderer, req SetGeometry) Result {
	if req.Geometry == nil {
		return Failure
	}
	av.Geometry = *req.Geometry
	av.AspectRatio = req.Geometry.Aspect()
	video.GeometryChanged = true
	renderer.Invalidate()
	return Success
}

// HandleSetSystemAVInfo updates the geometry and timing of the core. The
// reinit function, which may be nil, is called only when the sample rate has
// changed.
func HandleSetSystemAVInfo(video *VideoState, av *AVState, renderer *Renderer, reinit ReinitFunc, req SetSystemAVInfo) Result {
	if req.Info == nil {
		return Failure
	}

	oldRate := av.SampleRate
	av.Set(*req.Info)

	if reinit != nil && oldRate != av.SampleRate {
		reinit(oldRate, av.SampleRate, av.FPS)
	}

	video.AVInfoChanged = true
	renderer.Invalidate()
	return Success
}

// HandleSetFrameTimeCallback registers the frame time callback. A request
// with a nil callback function unregisters it.
func HandleSetFrameTimeCallback(video *VideoState, req SetFrameTimeCallback) Result {
	if req.Callback == nil {
		return Failure
	}
	if req.Callback.Callback == nil {
		video.FrameTime = FrameTimeCallback{}
		video.FrameTimeLast = 0
		return Success
	}
	video.FrameTime = *req.Callback
	video.FrameTimeLast = 0
	return Success
}

// HandleGetDirectory answers both the system directory and the save
// directory requests.
func HandleGetDirectory(dir string, out *string) Result {
	if out == nil {
		return Failure
	}
	*out = dir
	return Success
}

// HandleGetFastforwarding reports whether fast-forward is active.
func HandleGetFastforwarding(throttle *ThrottleInfo, req GetFastforwarding) Result {
	if req.Out == nil {
		return Failure
	}
	*req.Out = throttle.FastForward
	return Success
}

// HandleGetTargetRefreshRate reports the frame rate of the core.
func HandleGetTargetRefreshRate(av *AVState, req GetTargetRefreshRate) Result {
	if req.Out == nil {
		return Failure
	}
	*req.Out = float32(av.FPS)
	return Success
}

// HandleGetThrottleState reports vsync pacing at normal speed or fast-forward
// pacing at the maximum fast-forward multiplier.
func HandleGetThrottleState(throttle *ThrottleInfo, req GetThrottleState) Result {
	if req.Out == nil {
		return Failure
	}
	if throttle.FastForward {
		req.Out.Mode = ThrottleFastForward
		req.Out.Rate = float32(throttle.MaxFFSpeed + 1)
	} else {
		req.Out.Mode = ThrottleVSync
		req.Out.Rate = 1.0
	}
	return Success
}

// HandleGetAudioVideoEnable reports that both video and audio are consumed.
func HandleGetAudioVideoEnable(req GetAudioVideoEnable) Result {
	if req.Out == nil {
		return Failure
	}
	*req.Out = 0b11
	return Success
}

// customControllerSignature must equal a controller description exactly.
const customControllerSignature = "dualshock"

// HandleSetControllerInfo looks for an enhanced controller among the device
// types the core declares for the first port. The request is always reported
// to the core as having failed, even when the information was used.
func HandleSetControllerInfo(controllers *Controllers, req SetControllerInfo) Result {
	if req.Ports == nil || len(*req.Ports) == 0 {
		return Failure
	}
	for _, t := range (*req.Ports)[0].Types {
		if t.Description == customControllerSignature {
			controllers.HasCustom = true
			break // for loop
		}
	}
	return Failure
}

// HandleSetDiskControlInterface copies the legacy disk control interface. The
// extended functions of the frontend's copy are cleared.
func HandleSetDiskControlInterface(dc *DiskControl, req SetDiskControlInterface) Result {
	if req.Control == nil {
		return Failure
	}
	*dc = DiskControl{
		SetEjectState:     req.Control.SetEjectState,
		GetEjectState:     req.Control.GetEjectState,
		GetImageIndex:     req.Control.GetImageIndex,
		SetImageIndex:     req.Control.SetImageIndex,
		GetNumImages:      req.Control.GetNumImages,
		ReplaceImageIndex: req.Control.ReplaceImageIndex,
		AddImageIndex:     req.Control.AddImageIndex,
	}
	return Success
}

// HandleSetDiskControlExtInterface copies the extended disk control interface.
func HandleSetDiskControlExtInterface(dc *DiskControl, req SetDiskControlExtInterface) Result {
	if req.Control == nil {
		return Failure
	}
	*dc = *req.Control
	return Success
}

// HandleSetAudioBufferStatusCallback registers the audio buffer status
// callback. A nil function unregisters it.
func HandleSetAudioBufferStatusCallback(cb *AudioBufferStatusFunc, req SetAudioBufferStatusCallback) Result {
	if req.Callback == nil {
		return Failure
	}
	*cb = *req.Callback
	return Success
}

// HandleGetVariable answers a query for the value of a core option.
func HandleGetVariable(vars Variables, req GetVariable) Result {
	if req.Value == nil || req.Key == "" || vars == nil {
		return Failure
	}
	v, ok := vars.Value(req.Key)
	if !ok {
		return Failure
	}
	*req.Value = v
	return Success
}

// HandleSetVariables replaces the core options.
func HandleSetVariables(vars Variables, req SetVariables) Result {
	if req.Variables == nil || vars == nil {
		return Failure
	}
	vars.Define(*req.Variables)
	return Success
}

// HandleGetVariableUpdate reports whether a core option has changed.
func HandleGetVariableUpdate(vars Variables, req GetVariableUpdate) Result {
	if req.Out == nil || vars == nil {
		return Failure
	}
	*req.Out = vars.Changed()
	return Success
}

// HandleSetCoreOptionsDisplay shows or hides a core option.
func HandleSetCoreOptionsDisplay(vars Variables, req SetCoreOptionsDisplay) Result {
	if req.Display == nil || vars == nil {
		return Failure
	}
	vars.SetVisible(req.Display.Key, req.Display.Visible)
	return Success
}

// HandleSetHWRender accepts a request for a hardware rendering context if the
// render pipeline supports it. The request is copied into pending and the
// context is created once the game has loaded.
func HandleSetHWRender(hw HWRenderer, pending *HWRenderRequest, req SetHWRender) Result {
	if req.Request == nil {
		return Failure
	}
	if hw == nil {
		return Failure
	}
	if !hw.Supported(req.Request.ContextType, req.Request.VersionMajor, req.Request.VersionMinor) {
		return Failure
	}
	*pending = *req.Request
	return Success
}

// putBool is used by the requests with a fixed boolean answer.
func putBool(out *bool, v bool) Result {
	if out == nil {
		return Failure
	}
	*out = v
	return Success
}

// putUint is used by the requests with a fixed unsigned answer.
func putUint(out *uint, v uint) Result {
	if out == nil {
		return Failure
	}
	*out = v
	return Success
}
