// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/io"

// GetMpfaFlags overrides the discretisation options with values given in keycode format
//  Example: extra = "!q:0.5 !upw:1 !cache:0"
func GetMpfaFlags(q0, upw0 float64, cache0 bool, extra string) (q, upw float64, cacheGlobally bool) {

	// defaults
	q, upw, cacheGlobally = q0, upw0, cache0

	// continuity point
	if s_q, found := io.Keycode(extra, "q"); found {
		q = io.Atof(s_q)
	}

	// upwind weight
	if s_upw, found := io.Keycode(extra, "upw"); found {
		upw = io.Atof(s_upw)
	}

	// global caching
	if s_cache, found := io.Keycode(extra, "cache"); found {
		cacheGlobally = io.Atob(s_cache)
	}
	return
}
