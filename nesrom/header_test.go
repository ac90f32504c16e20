package nesrom

import (
	"reflect"
	"testing"
)

func TestParseHeader(t *testing.T) {
	bytes := []byte{0x4e, 0x45, 0x53, 0x1a, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	want := &Header{
		constant: "NES\x1a",
		prgSize:  2,
		chrSize:  1,
		flags6:   1,
		unused:   []byte{0, 0, 0, 0, 0},
	}

	if h := parseHeader(bytes); !reflect.DeepEqual(h, want) {
		t.Errorf("parseHeader() = %+v, want %+v", h, want)
	}
}

func TestNES2Format(t *testing.T) {
	cases := []struct {
		constant           string
		flags7             uint8
		wantINES, wantNES2 bool
	}{
		{"NES\x1A", 0x08, true, true},
		{"NES\x1A", 0x0C, true, false},
		{"BOB\x1A", 0x08, false, false},
	}

	for i, tc := range cases {
		h := &Header{constant: tc.constant, flags7: tc.flags7}
		if h.isINesFormat() != tc.wantINES || h.isNES2Format() != tc.wantNES2 {
			t.Errorf("%d: ines = %t want %t; nes2 = %t, want %t", i, h.isINesFormat(), tc.wantINES, h.isNES2Format(), tc.wantNES2)
		}
	}
}

func TestMapperNum(t *testing.T) {
	cases := []struct {
		name           string
		flags6, flags7 uint8
		unused         []byte
		nes2           bool
		want           uint16
	}{
		{"last bytes zero, uses both nibbles", 0x10, 0x20, []byte{0, 0, 0, 0, 0}, false, 0x21},
		{"garbage in tail, not nes2, high nibble masked", 0x30, 0x40, []byte{0, 1, 0, 0, 0}, false, 0x03},
		{"garbage in tail but nes2, high nibble trusted", 0x50, 0x28, []byte{0, 1, 0, 0, 0}, true, 0x25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &Header{constant: "NES\x1A", flags6: tc.flags6, flags7: tc.flags7, unused: tc.unused}
			if got := h.isNES2Format(); got != tc.nes2 {
				t.Fatalf("isNES2Format() = %v, want %v", got, tc.nes2)
			}
			if got := h.mapperNum(); got != tc.want {
				t.Errorf("mapperNum() = %#02x, want %#02x", got, tc.want)
			}
		})
	}
}

func TestHasTrainer(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   bool
	}{
		{0xFF, true},
		{0x04, true},
		{0x0C, true},
		{0x0A, false},
	}

	for i, tc := range cases {
		h := &Header{constant: "NES\x1A", flags6: tc.flags6}
		if got := h.hasTrainer(); got != tc.want {
			t.Errorf("%d: hasTrainer() = %t, want %t", i, got, tc.want)
		}
	}
}

func TestHasPlayChoice10(t *testing.T) {
	cases := []struct {
		flags7 uint8
		want   bool
	}{
		{0xFF, true},
		{0x02, true},
		{0x0D, false},
		{0x01, false},
	}

	for i, tc := range cases {
		h := &Header{constant: "NES\x1A", flags7: tc.flags7}
		if got := h.hasPlayChoice(); got != tc.want {
			t.Errorf("%d: hasPlayChoice() = %t, want %t", i, got, tc.want)
		}
	}
}

func TestMirroringMode(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   uint8
	}{
		{0xFF, MIRROR_FOUR_SCREEN},
		{0x00, MIRROR_HORIZONTAL},
		{0x01, MIRROR_VERTICAL},
		{0x08, MIRROR_FOUR_SCREEN},
		{0x09, MIRROR_FOUR_SCREEN},
	}

	for i, tc := range cases {
		h := &Header{constant: "NES\x1A", flags6: tc.flags6}
		if got := h.mirroringMode(); got != tc.want {
			t.Errorf("%d: mirroringMode() = %d, want %d", i, got, tc.want)
		}
	}
}

func TestBatteryBackedSRAM(t *testing.T) {
	cases := []struct {
		flags6, flags8 uint8
		want           bool
		wantSize       uint8
	}{
		{0, 0, false, 0},
		{0, 16, false, 0},
		{BATTERY_BACKED_SRAM, 0, true, 1},
		{BATTERY_BACKED_SRAM, 1, true, 1},
		{BATTERY_BACKED_SRAM, 16, true, 16},
	}

	for i, tc := range cases {
		h := &Header{constant: "NES\x1A", flags6: tc.flags6, flags8: tc.flags8}
		if got, size := h.hasPrgRAM(), h.prgRAMSize(); got != tc.want || size != tc.wantSize {
			t.Errorf("%d: hasPrgRAM() = %t, want %t; prgRAMSize() = %d, want %d", i, got, tc.want, size, tc.wantSize)
		}
	}
}
