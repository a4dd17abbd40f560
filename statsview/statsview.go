// This file is part of Eartrainer.
//
// Eartrainer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Eartrainer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Eartrainer.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/eartrainer/logger"
)

// the main loop is uncapped by default so memory and goroutine counts move
// quickly. sample twice a second
const interval = 500

// Launch a new goroutine running the statsview. A failure of the server is
// logged.
func Launch(output io.Writer, perm logger.Permission) {
	viewer.SetConfiguration(viewer.WithAddr(Address), viewer.WithInterval(interval))

	go func() {
		mgr := statsview.New()
		if err := mgr.Start(); err != nil {
			logger.Log(perm, logTag, err)
		}
	}()

	logger.Logf(perm, logTag, "launched on %s", Address)
	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
