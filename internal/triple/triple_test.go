package triple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		arch   string
		vendor string
		os     string
		env    string
	}{
		{name: "four components", input: "x86_64-unknown-linux-gnu", arch: "x86_64", vendor: "unknown", os: "linux", env: "gnu"},
		{name: "windows msvc", input: "x86_64-pc-windows-msvc", arch: "x86_64", vendor: "pc", os: "windows", env: "msvc"},
		{name: "vendor form", input: "aarch64-apple-darwin", arch: "aarch64", vendor: "apple", os: "darwin"},
		{name: "env form", input: "aarch64-linux-android", arch: "aarch64", os: "linux", env: "android"},
		{name: "bare metal", input: "thumbv7em-none-eabihf", arch: "thumbv7em", os: "none", env: "eabihf"},
		{name: "two components", input: "wasm32-wasip1", arch: "wasm32", os: "wasip1"},
		{name: "wasm unknown", input: "wasm32-unknown-unknown", arch: "wasm32", vendor: "unknown", os: "unknown"},
		{name: "riscv family", input: "riscv64gc-unknown-linux-gnu", arch: "riscv64gc", vendor: "unknown", os: "linux", env: "gnu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.arch, got.Arch)
			assert.Equal(t, tt.vendor, got.Vendor)
			assert.Equal(t, tt.os, got.OS)
			assert.Equal(t, tt.env, got.Env)
			assert.True(t, got.Recognized())
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: ErrEmpty},
		{name: "whitespace", input: "  ", wantErr: ErrEmpty},
		{name: "single component", input: "linux", wantErr: ErrMalformed},
		{name: "unknown arch", input: "z80-unknown-linux-gnu", wantErr: ErrUnknownArch},
		{name: "unknown os", input: "x86_64-unknown-plan10-gnu", wantErr: ErrUnknownOS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSerialize(t *testing.T) {
	assert.Nil(t, Serialize(nil))

	s := Serialize(MustParse("aarch64-apple-darwin"))
	require.NotNil(t, s)
	assert.Equal(t, "aarch64-apple-darwin", *s)

	u := Serialize(Unknown("my-custom-target"))
	require.NotNil(t, u)
	assert.Equal(t, "my-custom-target", *u)
}

func TestDeserialize(t *testing.T) {
	t.Run("absent stays absent", func(t *testing.T) {
		assert.Nil(t, Deserialize(nil))
	})

	t.Run("known triple", func(t *testing.T) {
		s := "x86_64-unknown-linux-gnu"
		got := Deserialize(&s)
		require.NotNil(t, got)
		assert.True(t, got.Recognized())
		assert.Equal(t, "linux", got.OS)
	})

	t.Run("unrecognized triple is present but unknown", func(t *testing.T) {
		s := "bogus-target"
		got := Deserialize(&s)
		require.NotNil(t, got, "unrecognized must not collapse to absent")
		assert.False(t, got.Recognized())
		assert.Equal(t, "bogus-target", got.String())
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, MustParse("x86_64-apple-darwin")))
	assert.True(t, Equal(MustParse("x86_64-apple-darwin"), MustParse("x86_64-apple-darwin")))
	assert.False(t, Equal(MustParse("x86_64-apple-darwin"), MustParse("aarch64-apple-darwin")))
	assert.False(t, Equal(MustParse("x86_64-apple-darwin"), Unknown("x86_64-apple-darwin")))
}

func TestClone(t *testing.T) {
	assert.Nil(t, (*Triple)(nil).Clone())

	orig := MustParse("x86_64-unknown-linux-musl")
	c := orig.Clone()
	c.Env = "gnu"
	assert.Equal(t, "musl", orig.Env)
}

func TestForPlatform(t *testing.T) {
	got, ok := ForPlatform("linux", "amd64")
	require.True(t, ok)
	assert.Equal(t, "x86_64-unknown-linux-gnu", got.String())

	_, ok = ForPlatform("plan9", "mips")
	assert.False(t, ok)
}
