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

package platform

// Button is a physical button of the device.
type Button int

// List of valid Button values.
const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonL1
	ButtonR1
	ButtonL2
	ButtonR2
	ButtonStart
	ButtonSelect
	ButtonMenu
	ButtonPower

	NumButtons
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonX:
		return "X"
	case ButtonY:
		return "Y"
	case ButtonL1:
		return "L1"
	case ButtonR1:
		return "R1"
	case ButtonL2:
		return "L2"
	case ButtonR2:
		return "R2"
	case ButtonStart:
		return "Start"
	case ButtonSelect:
		return "Select"
	case ButtonMenu:
		return "Menu"
	case ButtonPower:
		return "Power"
	}
	return "unknown button"
}

// Pad tracks the state of the buttons between polls. Button events are fed
// to the Pad with Set() and a new frame is started with Frame(). The zero
// value is ready to use.
type Pad struct {
	down    [NumButtons]bool
	pressed [NumButtons]bool
	release [NumButtons]bool
}

// Frame forgets the buttons that were pressed or released during the
// previous frame. Buttons that are held remain held.
func (p *Pad) Frame() {
	p.pressed = [NumButtons]bool{}
	p.release = [NumButtons]bool{}
}

// Set the state of a button. Setting a button to the state it is already in
// does nothing, which filters out key repeat.
func (p *Pad) Set(b Button, down bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	if p.down[b] == down {
		return
	}
	p.down[b] = down
	if down {
		p.pressed[b] = true
	} else {
		p.release[b] = true
	}
}

// Reset releases all buttons without reporting them as released.
func (p *Pad) Reset() {
	*p = Pad{}
}

// IsPressed returns true if the button is held.
func (p *Pad) IsPressed(b Button) bool {
	return b >= 0 && b < NumButtons && p.down[b]
}

// JustPressed returns true if the button went down this frame.
func (p *Pad) JustPressed(b Button) bool {
	return b >= 0 && b < NumButtons && p.pressed[b]
}

// JustReleased returns true if the button went up this frame.
func (p *Pad) JustReleased(b Button) bool {
	return b >= 0 && b < NumButtons && p.release[b]
}

// AnyPressed returns true if any button went down this frame.
func (p *Pad) AnyPressed() bool {
	for _, v := range p.pressed {
		if v {
			return true
		}
	}
	return false
}
