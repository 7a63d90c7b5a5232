// This file is part of mos6502.
//
// mos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502.  If not, see <https://www.gnu.org/licenses/>.

package performance

// CalcMHz takes the number of cycles and the duration (in seconds) and returns
// the effective clock speed in megahertz. The accuracy is the effective speed
// as a percentage of the target speed. If the target is zero or less the
// accuracy is zero.
func CalcMHz(cycles uint64, duration float64, target float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	mhz = float64(cycles) / duration / 1000000
	if target > 0 {
		accuracy = 100 * mhz / target
	}
	return mhz, accuracy
}
