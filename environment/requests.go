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

import "fmt"

// RequestID identifies an environment request. The values are fixed by the
// core ABI.
type RequestID uint32

// Experimental is ORed into the ID of requests the ABI marks as experimental.
const Experimental RequestID = 0x10000

// List of request IDs understood by the frontend.
const (
	IDSetRotation                    RequestID = 1
	IDGetOverscan                    RequestID = 2
	IDGetCanDupe                     RequestID = 3
	IDSetMessage                     RequestID = 6
	IDShutdown                       RequestID = 7
	IDSetPerformanceLevel            RequestID = 8
	IDGetSystemDirectory             RequestID = 9
	IDSetPixelFormat                 RequestID = 10
	IDSetInputDescriptors            RequestID = 11
	IDSetDiskControlInterface        RequestID = 13
	IDSetHWRender                    RequestID = 14
	IDGetVariable                    RequestID = 15
	IDSetVariables                   RequestID = 16
	IDGetVariableUpdate              RequestID = 17
	IDSetSupportNoGame               RequestID = 18
	IDSetFrameTimeCallback           RequestID = 21
	IDGetLogInterface                RequestID = 27
	IDGetSaveDirectory               RequestID = 31
	IDSetSystemAVInfo                RequestID = 32
	IDSetControllerInfo              RequestID = 35
	IDSetGeometry                    RequestID = 37
	IDGetLanguage                    RequestID = 39
	IDGetAudioVideoEnable            RequestID = 47 | Experimental
	IDGetFastforwarding              RequestID = 49 | Experimental
	IDGetTargetRefreshRate           RequestID = 50 | Experimental
	IDGetInputBitmasks               RequestID = 51 | Experimental
	IDGetCoreOptionsVersion          RequestID = 52
	IDSetCoreOptionsDisplay          RequestID = 55
	IDGetDiskControlInterfaceVersion RequestID = 57
	IDSetDiskControlExtInterface     RequestID = 58
	IDSetAudioBufferStatusCallback   RequestID = 62
	IDGetThrottleState               RequestID = 71 | Experimental
)

func (id RequestID) String() string {
	if n, ok := requestNames[id]; ok {
		return n
	}
	if id&Experimental == Experimental {
		return fmt.Sprintf("unknown (%d | experimental)", uint32(id&^Experimental))
	}
	return fmt.Sprintf("unknown (%d)", uint32(id))
}

var requestNames = map[RequestID]string{
	IDSetRotation:                    "SET_ROTATION",
	IDGetOverscan:                    "GET_OVERSCAN",
	IDGetCanDupe:                     "GET_CAN_DUPE",
	IDSetMessage:                     "SET_MESSAGE",
	IDShutdown:                       "SHUTDOWN",
	IDSetPerformanceLevel:            "SET_PERFORMANCE_LEVEL",
	IDGetSystemDirectory:             "GET_SYSTEM_DIRECTORY",
	IDSetPixelFormat:                 "SET_PIXEL_FORMAT",
	IDSetInputDescriptors:            "SET_INPUT_DESCRIPTORS",
	IDSetDiskControlInterface:        "SET_DISK_CONTROL_INTERFACE",
	IDSetHWRender:                    "SET_HW_RENDER",
	IDGetVariable:                    "GET_VARIABLE",
	IDSetVariables:                   "SET_VARIABLES",
	IDGetVariableUpdate:              "GET_VARIABLE_UPDATE",
	IDSetSupportNoGame:               "SET_SUPPORT_NO_GAME",
	IDSetFrameTimeCallback:           "SET_FRAME_TIME_CALLBACK",
	IDGetLogInterface:                "GET_LOG_INTERFACE",
	IDGetSaveDirectory:               "GET_SAVE_DIRECTORY",
	IDSetSystemAVInfo:                "SET_SYSTEM_AV_INFO",
	IDSetControllerInfo:              "SET_CONTROLLER_INFO",
	IDSetGeometry:                    "SET_GEOMETRY",
	IDGetLanguage:                    "GET_LANGUAGE",
	IDGetAudioVideoEnable:            "GET_AUDIO_VIDEO_ENABLE",
	IDGetFastforwarding:              "GET_FASTFORWARDING",
	IDGetTargetRefreshRate:           "GET_TARGET_REFRESH_RATE",
	IDGetInputBitmasks:               "GET_INPUT_BITMASKS",
	IDGetCoreOptionsVersion:          "GET_CORE_OPTIONS_VERSION",
	IDSetCoreOptionsDisplay:          "SET_CORE_OPTIONS_DISPLAY",
	IDGetDiskControlInterfaceVersion: "GET_DISK_CONTROL_INTERFACE_VERSION",
	IDSetDiskControlExtInterface:     "SET_DISK_CONTROL_EXT_INTERFACE",
	IDSetAudioBufferStatusCallback:   "SET_AUDIO_BUFFER_STATUS_CALLBACK",
	IDGetThrottleState:               "GET_THROTTLE_STATE",
}

// Request is implemented by every request type. It is a closed set: the
// unexported method means only types in this package can be requests.
//
// Request types that return a value to the core do so through an Out field.
// The Out field is nil when the core supplied no storage for the answer.
type Request interface {
	ID() RequestID
	request()
}

// Unknown is a request that the decoder did not recognise. It always resolves
// to Unhandled.
type Unknown struct {
	Cmd RequestID
}

// SetRotation asks the frontend to rotate the display by a number of quarter
// turns counter-clockwise.
type SetRotation struct {
	Rotation *uint
}

// GetOverscan asks whether the core should crop overscan.
type GetOverscan struct {
	Out *bool
}

// GetCanDupe asks whether the frontend accepts repeated frames.
type GetCanDupe struct {
	Out *bool
}

// SetMessage asks the frontend to show a message.
type SetMessage struct {
	Message *Message
}

// Shutdown asks the frontend to end the session.
type Shutdown struct{}

// SetPerformanceLevel tells the frontend how demanding the core is.
type SetPerformanceLevel struct {
	Level *uint
}

// GetSystemDirectory asks for the directory containing BIOS files.
type GetSystemDirectory struct {
	Out *string
}

// SetPixelFormat selects the format of future frames.
type SetPixelFormat struct {
	Format *PixelFormat
}

// SetInputDescriptors describes the purpose of each input.
type SetInputDescriptors struct {
	Descriptors *[]InputDescriptor
}

// SetDiskControlInterface registers the legacy disk control interface.
type SetDiskControlInterface struct {
	Control *DiskControl
}

// SetHWRender asks for a hardware rendering context.
type SetHWRender struct {
	Request *HWRenderRequest
}

// GetVariable asks for the current value of a core option. The core supplies
// the Key and the frontend answers through Value.
type GetVariable struct {
	Key   string
	Value *string
}

// SetVariables declares the core's options.
type SetVariables struct {
	Variables *[]VariableDefinition
}

// GetVariableUpdate asks whether any core option has changed since the last query.
type GetVariableUpdate struct {
	Out *bool
}

// SetSupportNoGame tells the frontend that the core can run without content.
type SetSupportNoGame struct {
	Support *bool
}

// SetFrameTimeCallback registers, or with a nil Callback field clears, the
// frame time callback.
type SetFrameTimeCallback struct {
	Callback *FrameTimeCallback
}

// GetLogInterface asks for the frontend's log interface.
type GetLogInterface struct{}

// GetSaveDirectory asks for the directory in which the core may write saves.
type GetSaveDirectory struct {
	Out *string
}

// SetSystemAVInfo changes the geometry and the timing of the core.
type SetSystemAVInfo struct {
	Info *SystemAVInfo
}

// SetControllerInfo lists the device types supported on each port.
type SetControllerInfo struct {
	Ports *[]ControllerInfo
}

// SetGeometry changes the geometry of the core without changing the timing.
type SetGeometry struct {
	Geometry *GameGeometry
}

// GetLanguage asks for the user's language.
type GetLanguage struct {
	Out *uint
}

// GetAudioVideoEnable asks which outputs the frontend consumes. The answer is
// a bitmask: bit 0 for video and bit 1 for audio.
type GetAudioVideoEnable struct {
	Out *int
}

// GetFastforwarding asks whether the frontend is fast-forwarding.
type GetFastforwarding struct {
	Out *bool
}

// GetTargetRefreshRate asks for the refresh rate the frontend is pacing to.
type GetTargetRefreshRate struct {
	Out *float32
}

// GetInputBitmasks asks whether the frontend supports the joypad bitmask query.
type GetInputBitmasks struct{}

// GetCoreOptionsVersion asks which version of the core options interface the
// frontend supports.
type GetCoreOptionsVersion struct {
	Out *uint
}

// SetCoreOptionsDisplay shows or hides a core option.
type SetCoreOptionsDisplay struct {
	Display *CoreOptionDisplay
}

// GetDiskControlInterfaceVersion asks which version of the disk control
// interface the frontend supports.
type GetDiskControlInterfaceVersion struct {
	Out *uint
}

// SetDiskControlExtInterface registers the extended disk control interface.
type SetDiskControlExtInterface struct {
	Control *DiskControl
}

// SetAudioBufferStatusCallback registers, or with a nil Callback clears, the
// audio buffer status callback.
type SetAudioBufferStatusCallback struct {
	Callback *AudioBufferStatusFunc
}

// GetThrottleState asks how the frontend is pacing emulation.
type GetThrottleState struct {
	Out *ThrottleState
}

func (r Unknown) ID() RequestID                      { return r.Cmd }
func (SetRotation) ID() RequestID                    { return IDSetRotation }
func (GetOverscan) ID() RequestID                    { return IDGetOverscan }
func (GetCanDupe) ID() RequestID                     { return IDGetCanDupe }
func (SetMessage) ID() RequestID                     { return IDSetMessage }
func (Shutdown) ID() RequestID                       { return IDShutdown }
func (SetPerformanceLevel) ID() RequestID            { return IDSetPerformanceLevel }
func (GetSystemDirectory) ID() RequestID             { return IDGetSystemDirectory }
func (SetPixelFormat) ID() RequestID                 { return IDSetPixelFormat }
func (SetInputDescriptors) ID() RequestID            { return IDSetInputDescriptors }
func (SetDiskControlInterface) ID() RequestID        { return IDSetDiskControlInterface }
func (SetHWRender) ID() RequestID                    { return IDSetHWRender }
func (GetVariable) ID() RequestID                    { return IDGetVariable }
func (SetVariables) ID() RequestID                   { return IDSetVariables }
func (GetVariableUpdate) ID() RequestID              { return IDGetVariableUpdate }
func (SetSupportNoGame) ID() RequestID               { return IDSetSupportNoGame }
func (SetFrameTimeCallback) ID() RequestID           { return IDSetFrameTimeCallback }
func (GetLogInterface) ID() RequestID                { return IDGetLogInterface }
func (GetSaveDirectory) ID() RequestID               { return IDGetSaveDirectory }
func (SetSystemAVInfo) ID() RequestID                { return IDSetSystemAVInfo }
func (SetControllerInfo) ID() RequestID              { return IDSetControllerInfo }
func (SetGeometry) ID() RequestID                    { return IDSetGeometry }
func (GetLanguage) ID() RequestID                    { return IDGetLanguage }
func (GetAudioVideoEnable) ID() RequestID            { return IDGetAudioVideoEnable }
func (GetFastforwarding) ID() RequestID              { return IDGetFastforwarding }
func (GetTargetRefreshRate) ID() RequestID           { return IDGetTargetRefreshRate }
func (GetInputBitmasks) ID() RequestID               { return IDGetInputBitmasks }
func (GetCoreOptionsVersion) ID() RequestID          { return IDGetCoreOptionsVersion }
func (SetCoreOptionsDisplay) ID() RequestID          { return IDSetCoreOptionsDisplay }
func (GetDiskControlInterfaceVersion) ID() RequestID { return IDGetDiskControlInterfaceVersion }
func (SetDiskControlExtInterface) ID() RequestID     { return IDSetDiskControlExtInterface }
func (SetAudioBufferStatusCallback) ID() RequestID   { return IDSetAudioBufferStatusCallback }
func (GetThrottleState) ID() RequestID               { return IDGetThrottleState }

func (Unknown) request()                        {}
func (SetRotation) request()                    {}
func (GetOverscan) request()                    {}
func (GetCanDupe) request()                     {}
func (SetMessage) request()                     {}
func (Shutdown) request()                       {}
func (SetPerformanceLevel) request()            {}
func (GetSystemDirectory) request()             {}
func (SetPixelFormat) request()                 {}
func (SetInputDescriptors) request()            {}
func (SetDiskControlInterface) request()        {}
func (SetHWRender) request()                    {}
func (GetVariable) request()                    {}
func (SetVariables) request()                   {}
func (GetVariableUpdate) request()              {}
func (SetSupportNoGame) request()               {}
func (SetFrameTimeCallback) request()           {}
func (GetLogInterface) request()                {}
func (GetSaveDirectory) request()               {}
func (SetSystemAVInfo) request()                {}
func (SetControllerInfo) request()              {}
func (SetGeometry) request()                    {}
func (GetLanguage) request()                    {}
func (GetAudioVideoEnable) request()            {}
func (GetFastforwarding) request()              {}
func (GetTargetRefreshRate) request()           {}
func (GetInputBitmasks) request()               {}
func (GetCoreOptionsVersion) request()          {}
func (SetCoreOptionsDisplay) request()          {}
func (GetDiskControlInterfaceVersion) request() {}
func (SetDiskControlExtInterface) request()     {}
func (SetAudioBufferStatusCallback) request()   {}
func (GetThrottleState) request()               {}
