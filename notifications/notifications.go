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

package notifications

// Notice describes events that somehow change the presentation of the
// session. These notifications can be used to present additional information
// to the user.
type Notice string

// List of defined notifications.
const (
	// a save state has been written or read by the pause menu
	NotifyStateSaved  Notice = "NotifyStateSaved"
	NotifyStateLoaded Notice = "NotifyStateLoaded"

	// the active disc of a multi-disc game has changed
	NotifyDiscChanged Notice = "NotifyDiscChanged"

	// hardware rendering has failed and the session has fallen back to
	// software rendering
	NotifyHWRenderDisabled Notice = "NotifyHWRenderDisabled"

	// the core has sent a message for display. the message text accompanies
	// the notice
	NotifyCoreMessage Notice = "NotifyCoreMessage"

	// the device is about to sleep or has just woken
	NotifySleep Notice = "NotifySleep"
	NotifyWake  Notice = "NotifyWake"
)

// Notify is used for communication between components that should not know
// about each other. For example, the environment dispatcher raises
// NotifyCoreMessage and the platform decides how to show it.
//
// The detail argument is optional and its meaning depends on the notice.
type Notify interface {
	Notify(notice Notice, detail string) error
}
