// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import "testing"

func TestStitchNoLeadingPadding(t *testing.T) {
	origins := []Origin[[]byte]{
		{Offset: 0x0600, Contents: []byte{0xea}},
	}
	out, err := stitch(origins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != string([]byte{0xea}) {
		t.Errorf("expected no leading padding, got %x", out)
	}
}

func TestStitchDropsEmptyOrigins(t *testing.T) {
	origins := []Origin[[]byte]{
		{Offset: 0, Contents: nil},
		{Offset: 0x10, Contents: []byte{0x01}},
	}
	out, err := stitch(origins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != string([]byte{0x01}) {
		t.Errorf("expected the empty origin to contribute nothing, got %x", out)
	}
}

func TestStitchPadsGapsBetweenOrigins(t *testing.T) {
	origins := []Origin[[]byte]{
		{Offset: 0, Contents: []byte{0x01}},
		{Offset: 4, Contents: []byte{0x02}},
	}
	out, err := stitch(origins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x01, 0x00, 0x00, 0x00, 0x02}
	if string(out) != string(want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestStitchOutOfOrderOrigins(t *testing.T) {
	origins := []Origin[[]byte]{
		{Offset: 4, Contents: []byte{0x02}},
		{Offset: 0, Contents: []byte{0x01}},
	}
	out, err := stitch(origins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x01, 0x00, 0x00, 0x00, 0x02}
	if string(out) != string(want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestStitchOverlapIsAnError(t *testing.T) {
	origins := []Origin[[]byte]{
		{Offset: 0, Contents: []byte{0x01, 0x02, 0x03}},
		{Offset: 1, Contents: []byte{0x04}},
	}
	_, err := stitch(origins)
	if err == nil {
		t.Fatal("expected an overlap error")
	}
}

func TestStitchAllEmpty(t *testing.T) {
	out, err := stitch([]Origin[[]byte]{{Offset: 0, Contents: nil}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != nil {
		t.Errorf("expected nil output, got %x", out)
	}
}
