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

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/minplayer/minplayer/logger"
	"github.com/minplayer/minplayer/player"
)

// Sysfs sets the CPU speed and reads the battery through files in sysfs. An
// empty path disables the feature that uses it.
type Sysfs struct {
	// written with the frequency in kHz for a CPU speed
	CPUPath string

	// frequencies in kHz indexed by player.Overclock
	Frequencies [4]int

	// read for the battery capacity as a percentage
	BatteryPath string

	// read for the charging state. a value of 1 is charging
	ChargingPath string

	// read for the connection state of an external display
	HDMIPath string
}

// DefaultSysfs is the layout of a typical RK3566 handheld.
var DefaultSysfs = Sysfs{
	CPUPath: "/sys/devices/system/cpu/cpu0/cpufreq/scaling_setspeed",
	Frequencies: [4]int{
		player.CPUPowersave:   1008000,
		player.CPUNormal:      1416000,
		player.CPUPerformance: 1800000,
		player.CPUIdle:        408000,
	},
	BatteryPath:  "/sys/class/power_supply/battery/capacity",
	ChargingPath: "/sys/class/power_supply/ac/online",
	HDMIPath:     "/sys/class/drm/card0-HDMI-A-1/status",
}

// SetCPUSpeed writes the frequency for the speed.
func (s Sysfs) SetCPUSpeed(speed player.Overclock) {
	if s.CPUPath == "" || speed < 0 || int(speed) >= len(s.Frequencies) {
		return
	}
	err := os.WriteFile(s.CPUPath, []byte(strconv.Itoa(s.Frequencies[speed])), 0o644)
	if err != nil {
		logger.Logf(logger.Allow, "platform", "cpu speed: %v", err)
	}
}

func readInt(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(b)))
}

// Battery returns the battery charge in steps of 20%, with a final step of
// 10% for a nearly empty battery. A device without a battery reports a full
// charge.
func (s Sysfs) Battery() (int, bool) {
	var charging bool
	if s.ChargingPath != "" {
		v, err := readInt(s.ChargingPath)
		charging = err == nil && v == 1
	}

	if s.BatteryPath == "" {
		return 100, charging
	}
	v, err := readInt(s.BatteryPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Logf(logger.Allow, "platform", "battery: %v", err)
		}
		return 100, charging
	}

	switch {
	case v > 80:
		return 100, charging
	case v > 60:
		return 80, charging
	case v > 40:
		return 60, charging
	case v > 20:
		return 40, charging
	case v > 10:
		return 20, charging
	}
	return 10, charging
}

// HDMI returns true if the display status file reads "connected".
func (s Sysfs) HDMI() bool {
	if s.HDMIPath == "" {
		return false
	}
	b, err := os.ReadFile(s.HDMIPath)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(b)) == "connected"
}
