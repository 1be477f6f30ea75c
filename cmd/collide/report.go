// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/collide/logx"
)

// Report writes a human readable summary of the result to w.
func Report(w io.Writer, res *Result, points bool) {
	fmt.Fprintln(w, logx.TitleColor("Bounds"))
	if res.Bounds != nil {
		fmt.Fprintf(w, "  %v\n", res.Bounds)
	}

	fmt.Fprintln(w, logx.TitleColor("Contacts"))
	if len(res.Contacts) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, ct := range res.Contacts {
		status := logx.SuccessColor("clear")
		if ct.Collides {
			status = logx.ErrorColor("collide")
		}
		fmt.Fprintf(w, "  %s <-> %s: %s\n", ct.A, ct.B, status)
		if !points {
			continue
		}
		for _, p := range ct.Points {
			fmt.Fprintf(w, "    %v\n", p)
		}
	}

	if len(res.Rays) == 0 {
		return
	}
	fmt.Fprintln(w, logx.TitleColor("Rays"))
	for _, rr := range res.Rays {
		if len(rr.Hits) == 0 {
			fmt.Fprintf(w, "  %s: %s\n", rr.Ray, logx.DebugColor("miss"))
			continue
		}
		for _, h := range rr.Hits {
			fmt.Fprintf(w, "  %s: %s at %g %v\n", rr.Ray, logx.InfoColor(h.Object), h.Distance, h.Point)
		}
	}
}
