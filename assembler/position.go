// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import "sync"

// position assigns an absolute byte address to every item in every
// origin. Each origin's address accumulates independently of the
// others, so the walk for one origin has no data dependency on any
// other origin's walk: position runs one goroutine per origin and
// waits for all of them before returning, so the single-threaded
// symbol-table merge that follows always sees fully-positioned items.
func position(origins []Origin[[]item]) {
	var wg sync.WaitGroup
	for i := range origins {
		wg.Add(1)
		go func(o *Origin[[]item]) {
			defer wg.Done()
			positionOrigin(o)
		}(&origins[i])
	}
	wg.Wait()
}

func positionOrigin(o *Origin[[]item]) {
	addr := o.Offset
	for _, it := range o.Contents {
		switch v := it.(type) {
		case *instructionItem:
			v.pos = addr
			addr += v.byteSize()
		case *symbolItem:
			v.pos = addr
		case *constantItem:
			v.pos = addr
			addr += v.unit
		}
	}
}
