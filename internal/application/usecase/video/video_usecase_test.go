package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "youtube", false},
		{"https://youtube.com/watch?v=abc", "youtube", false},
		{"https://youtu.be/abc123", "youtube", false},
		{"https://vimeo.com/76979871", "vimeo", false},
		{"https://www.vimeo.com/76979871", "vimeo", false},
		{"https://WWW.YOUTUBE.COM/watch?v=abc", "youtube", false},
		{"https://dailymotion.com/video/x123", "", true},
		{"https://youtube.com.evil.com/watch", "", true},
		{"not a url", "", true},
		{"", "", true},
		{"/relative/path", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.url, func(t *testing.T) {
			got, err := detectProvider(tc.url)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
