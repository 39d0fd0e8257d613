package storagekey

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr error
	}{
		{
			name: "https_url",
			url:  "https://example.com",
			want: "_https://example.com",
		},
		{
			name: "http_url",
			url:  "http://example.com",
			want: "_http://example.com",
		},
		{
			name: "scheme_defaults_to_https",
			url:  "example.com",
			want: "_https://example.com",
		},
		{
			name: "path_is_ignored",
			url:  "https://example.com/some/page?q=1",
			want: "_https://example.com",
		},
		{
			name: "host_with_port",
			url:  "http://localhost:8080",
			want: "_http://localhost:8080",
		},
		{
			name: "bare_host_with_path",
			url:  "example.com/settings",
			want: "_https://example.com",
		},
		{
			name:    "empty_input",
			url:     "",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "no_host",
			url:     "https://",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "no_host_with_explicit_scheme",
			url:     "http://",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "no_host_with_scheme_and_path",
			url:     "https:///settings",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "path_only",
			url:     "/just/a/path",
			wantErr: ErrInvalidURL,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, err := OriginKey(tc.url)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []byte(tc.want), key)
		})
	}
}

func TestOriginKeyDistinctOrigins(t *testing.T) {
	urls := []string{
		"https://a.com",
		"http://a.com",
		"https://b.com",
		"https://a.com:8443",
		"https://sub.a.com",
	}

	seen := make(map[string]string)
	for _, u := range urls {
		key, err := OriginKey(u)
		require.NoError(t, err)

		prev, dup := seen[string(key)]
		assert.False(t, dup, "key %q derived for both %q and %q", key, prev, u)
		seen[string(key)] = u

		// Deterministic across calls.
		again, err := OriginKey(u)
		require.NoError(t, err)
		assert.Equal(t, key, again)
	}
}

func TestEntryKey(t *testing.T) {
	key, err := EntryKey("https://a.com", "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte("_https://a.com\x00\x01theme"), key)

	_, err = EntryKey("https://", "theme")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestScanBounds(t *testing.T) {
	lower, upper, err := ScanBounds("https://a.com")
	require.NoError(t, err)
	assert.Equal(t, []byte("_https://a.com"), lower)
	assert.Equal(t, []byte("_https://a.com\x01"), upper)

	_, _, err = ScanBounds("")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestScanBoundsContainEveryEntryKey(t *testing.T) {
	lower, upper, err := ScanBounds("https://a.com")
	require.NoError(t, err)

	appKeys := []string{"", "a", "theme", "zzzz", "\x00weird", "\xff"}
	for _, k := range appKeys {
		entry, err := EntryKey("https://a.com", k)
		require.NoError(t, err)
		assert.True(t, bytes.Compare(entry, lower) >= 0, "entry for %q below lower bound", k)
		assert.True(t, bytes.Compare(entry, upper) < 0, "entry for %q not below upper bound", k)
	}

	// Keys of other origins stay outside, including a host that extends
	// this one textually.
	for _, other := range []string{"https://b.com", "https://a.com.evil.org", "http://a.com"} {
		entry, err := EntryKey(other, "theme")
		require.NoError(t, err)
		outside := bytes.Compare(entry, lower) < 0 || bytes.Compare(entry, upper) >= 0
		assert.True(t, outside, "entry of %q inside bounds of https://a.com", other)
	}
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		want    string
		wantErr error
	}{
		{
			name: "strips_frame_byte",
			raw:  []byte("\x01dark"),
			want: "dark",
		},
		{
			name: "frame_byte_value_is_not_validated",
			raw:  []byte("\x00dark"),
			want: "dark",
		},
		{
			name: "frame_byte_only",
			raw:  []byte("\x01"),
			want: "",
		},
		{
			name:    "empty_raw_value",
			raw:     []byte{},
			wantErr: ErrMalformedValue,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeValue(tc.raw)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeKeyRoundTrip(t *testing.T) {
	for _, appKey := range []string{"theme", "", "with spaces", "uniçode"} {
		entry, err := EntryKey("https://a.com", appKey)
		require.NoError(t, err)

		got, err := DecodeKey(entry)
		require.NoError(t, err)
		assert.Equal(t, appKey, got)
	}
}

func TestDecodeKeyWithoutSeparator(t *testing.T) {
	_, err := DecodeKey([]byte("_https://a.com"))
	assert.ErrorIs(t, err, ErrMalformedKey)
}
