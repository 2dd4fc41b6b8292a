package videoid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNamespaceUUIDForDomain_YouTubeExample(t *testing.T) {
	ns := NamespaceUUIDForDomain("youtube.com")
	require.Equal(t, uuid.MustParse("e500b8bc-9419-5269-b157-d8b9584d5b9e"), ns)
}

func TestVideoUUID_YouTubeExample(t *testing.T) {
	id := VideoUUID("ggLajT7aMMk")
	require.Equal(t, uuid.MustParse("ac236969-fc24-5d7d-92b9-ef5e30e26a63"), id)
	require.Equal(t, id, ItemUUID("YouTube", " ggLajT7aMMk "))
}

func TestItemUUID_ScopedByProvider(t *testing.T) {
	a := ItemUUID("pexels", "https://example.com/a.jpg")
	b := ItemUUID("pixabay", "https://example.com/a.jpg")
	require.NotEqual(t, a, b)
	require.Equal(t, a, ItemUUID("pexels", "https://example.com/a.jpg"))
	require.Equal(t, uuid.Version(5), a.Version())
}

func TestResolveCanonicalDomain_Aliases(t *testing.T) {
	require.Equal(t, "youtube.com", ResolveCanonicalDomain("youtu.be"))
	require.Equal(t, "youtube.com", ResolveCanonicalDomain("www.youtube.com"))
	require.Equal(t, "pexels.com", ResolveCanonicalDomain("images.pexels.com"))
	require.Equal(t, "wikimedia.org", ResolveCanonicalDomain("upload.wikimedia.org:443"))
	require.Equal(t, "example.org", ResolveCanonicalDomain("Example.org."))
	require.Equal(t, "", ResolveCanonicalDomain(" "))
}

func TestProviderDomain(t *testing.T) {
	require.Equal(t, "openverse.org", ProviderDomain("openverse"))
	require.Equal(t, "wikimedia.org", ProviderDomain(" Wikimedia "))
	require.Equal(t, "vimeo", ProviderDomain("Vimeo"))
}

func TestWatchURL(t *testing.T) {
	require.Equal(t, "https://www.youtube.com/watch?v=abc", WatchURL("abc"))
}

func TestIsSafeDownload(t *testing.T) {
	t.Parallel()

	cases := []struct {
		url  string
		want bool
	}{
		{"https://images.pexels.com/photos/1/a.jpeg", true},
		{"https://cdn.pixabay.com/video/1/large.mp4", true},
		{"https://upload.wikimedia.org/wikipedia/commons/a/ab/X.jpg", true},
		{"https://live.staticflickr.com/65535/1.jpg", true},
		{"http://flickr.com/photos/x", true},
		{"https://notpexels.com/a.jpg", false},
		{"https://www.youtube.com/watch?v=abc", false},
		{"ftp://pexels.com/a.jpg", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, IsSafeDownload(tc.url))
		})
	}
}

func TestExtractYouTubeVideoID(t *testing.T) {
	require.Equal(t, "ggLajT7aMMk", ExtractYouTubeVideoID("https://www.youtube.com/watch?v=ggLajT7aMMk&t=123s"))
	require.Equal(t, "ggLajT7aMMk", ExtractYouTubeVideoID("https://youtu.be/ggLajT7aMMk?t=120"))
	require.Equal(t, "ggLajT7aMMk", ExtractYouTubeVideoID("https://youtube.com/shorts/ggLajT7aMMk?feature=share"))
	require.Equal(t, "ggLajT7aMMk", ExtractYouTubeVideoID("https://m.youtube.com/embed/ggLajT7aMMk"))
	require.Equal(t, "", ExtractYouTubeVideoID("https://vimeo.com/123"))
	require.Equal(t, "", ExtractYouTubeVideoID("https://www.youtube.com/feed/trending"))
}
