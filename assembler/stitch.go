// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"fmt"
	"sort"
)

// stitch concatenates every origin's emitted bytes into a single flat
// image, ordered by offset and zero-padded across the gaps between
// them. Origins that emitted no bytes (an .origin with nothing
// following it before the next .origin) are dropped rather than
// padded. There is no padding before the first non-empty origin: the
// image begins at that origin's own offset, not at zero.
func stitch(origins []Origin[[]byte]) ([]byte, error) {
	var present []Origin[[]byte]
	for _, o := range origins {
		if len(o.Contents) > 0 {
			present = append(present, o)
		}
	}
	if len(present) == 0 {
		return nil, nil
	}

	sort.Slice(present, func(i, j int) bool { return present[i].Offset < present[j].Offset })

	var out []byte
	end := present[0].Offset
	for _, o := range present {
		if o.Offset < end {
			return nil, &UnspecifiedError{
				Detail: fmt.Sprintf("origin $%04X overlaps output already emitted through $%04X", o.Offset, end),
			}
		}
		for pad := o.Offset - end; pad > 0; pad-- {
			out = append(out, 0)
		}
		out = append(out, o.Contents...)
		end = o.Offset + len(o.Contents)
	}
	return out, nil
}
