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

package environment_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/minplayer/minplayer/environment"
	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/notifications"
	"github.com/minplayer/minplayer/test"
)

type session struct {
	video       environment.VideoState
	av          environment.AVState
	renderer    environment.Renderer
	format      environment.PixelFormat
	throttle    environment.ThrottleInfo
	controllers environment.Controllers
	disk        environment.DiskControl
	status      environment.AudioBufferStatusFunc
	hw          environment.HWRenderRequest
	quit        bool
}

type pipeline struct{}

func (pipeline) Supported(t environment.HWContextType, major, minor uint32) bool {
	return t == environment.HWContextOpenGLES2
}

type notices struct {
	detail []string
	err    error
}

func (n *notices) Notify(notice notifications.Notice, detail string) error {
	if notice == notifications.NotifyCoreMessage {
		n.detail = append(n.detail, detail)
	}
	return n.err
}

func newDispatcher(s *session, n *notices) *environment.Dispatcher {
	return environment.NewDispatcher(environment.State{
		Video:             &s.video,
		AV:                &s.av,
		Renderer:          &s.renderer,
		PixelFormat:       &s.format,
		Throttle:          &s.throttle,
		Controllers:       &s.controllers,
		DiskControl:       &s.disk,
		AudioBufferStatus: &s.status,
		HWRender:          &s.hw,
		Quit:              &s.quit,
		SystemDirectory:   "/mnt/SDCARD/Bios/GB",
		SaveDirectory:     "/mnt/SDCARD/Saves/GB",
		Pipeline:          pipeline{},
		Notify:            n,
	})
}

func TestDispatcher(t *testing.T) {
	var s session
	var n notices
	d := newDispatcher(&s, &n)

	rot := uint(1)
	test.DemandEquality(t, d.Dispatch(environment.SetRotation{Rotation: &rot}), environment.Success)
	test.Equate(t, s.video.Rotation, 1)

	var dir string
	test.DemandEquality(t, d.Dispatch(environment.GetSaveDirectory{Out: &dir}), environment.Success)
	test.Equate(t, dir, "/mnt/SDCARD/Saves/GB")
	test.DemandEquality(t, d.Dispatch(environment.GetSystemDirectory{Out: &dir}), environment.Success)
	test.Equate(t, dir, "/mnt/SDCARD/Bios/GB")

	// the log interface is not provided
	test.DemandEquality(t, d.Dispatch(environment.GetLogInterface{}), environment.Unhandled)
	test.DemandEquality(t, d.Dispatch(environment.Unknown{Cmd: 1000}), environment.Unhandled)
	test.DemandEquality(t, d.Dispatch(nil), environment.Unhandled)

	// variables are not available in this session
	var value string
	test.DemandEquality(t, d.Dispatch(environment.GetVariable{Key: "gb_palette", Value: &value}), environment.Failure)

	var version uint = 99
	test.DemandEquality(t, d.Dispatch(environment.GetCoreOptionsVersion{Out: &version}), environment.Success)
	test.Equate(t, version, 0)

	test.DemandEquality(t, d.Dispatch(environment.SetMessage{Message: &environment.Message{Text: "hello", Frames: 60}}), environment.Success)
	test.DemandEquality(t, len(n.detail), 1)
	test.Equate(t, n.detail[0], "hello")

	test.DemandEquality(t, d.Dispatch(environment.Shutdown{}), environment.Success)
	test.ExpectedSuccess(t, s.quit)

	// an unknown request carrying a known ID has no payload and fails
	test.DemandEquality(t, d.Dispatch(environment.Unknown{Cmd: environment.IDSetRotation}), environment.Failure)

	d.Handle(environment.IDSetRotation, nil)
	test.DemandEquality(t, d.Dispatch(environment.SetRotation{Rotation: &rot}), environment.Unhandled)
}

func TestDispatcherHWRender(t *testing.T) {
	var s session
	d := newDispatcher(&s, &notices{})

	req := environment.HWRenderRequest{ContextType: environment.HWContextVulkan}
	test.DemandEquality(t, d.Dispatch(environment.SetHWRender{Request: &req}), environment.Failure)
	test.DemandEquality(t, s.hw.ContextType, environment.HWContextNone)

	req = environment.HWRenderRequest{ContextType: environment.HWContextOpenGLES2, Depth: true}
	test.DemandEquality(t, d.Dispatch(environment.SetHWRender{Request: &req}), environment.Success)
	test.DemandEquality(t, s.hw.ContextType, environment.HWContextOpenGLES2)
	test.ExpectedSuccess(t, s.hw.Depth)
}

func TestDispatcherNilPayloads(t *testing.T) {
	var s session
	d := newDispatcher(&s, &notices{})
	s.video.Rotation = 3
	s.format = environment.FormatRGB565

	for _, req := range []environment.Request{
		environment.SetRotation{},
		environment.GetOverscan{},
		environment.GetCanDupe{},
		environment.SetMessage{},
		environment.SetPerformanceLevel{},
		environment.GetSystemDirectory{},
		environment.SetPixelFormat{},
		environment.SetInputDescriptors{},
		environment.SetDiskControlInterface{},
		environment.SetHWRender{},
		environment.SetSupportNoGame{},
		environment.SetFrameTimeCallback{},
		environment.GetSaveDirectory{},
		environment.SetSystemAVInfo{},
		environment.SetControllerInfo{},
		environment.SetGeometry{},
		environment.GetLanguage{},
		environment.GetAudioVideoEnable{},
		environment.GetFastforwarding{},
		environment.GetTargetRefreshRate{},
		environment.GetCoreOptionsVersion{},
		environment.GetDiskControlInterfaceVersion{},
		environment.SetDiskControlExtInterface{},
		environment.SetAudioBufferStatusCallback{},
		environment.GetThrottleState{},
	} {
		test.DemandEquality(t, d.Dispatch(req), environment.Failure, req.ID())
	}

	test.Equate(t, s.video.Rotation, 3)
	test.DemandEquality(t, s.format, environment.FormatRGB565)
	test.ExpectedFailure(t, s.video.GeometryChanged)
	test.ExpectedFailure(t, s.video.AVInfoChanged)
}

func TestMessageNotifyError(t *testing.T) {
	var s session
	n := notices{err: errors.New("no display")}
	d := newDispatcher(&s, &n)

	logger.Clear()
	defer logger.Clear()

	// the message is still accepted and the notification error is logged
	test.DemandEquality(t, d.Dispatch(environment.SetMessage{Message: &environment.Message{Text: "hello", Frames: 60}}), environment.Success)
	test.DemandEquality(t, len(n.detail), 1)

	var b strings.Builder
	logger.Tail(&b, 1)
	test.ExpectedSuccess(t, strings.Contains(b.String(), "no display"))
}
