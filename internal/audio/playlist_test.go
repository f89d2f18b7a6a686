package audio

import (
	"strings"
	"testing"

	"github.com/handiism/tagtidy/internal/model"
)

func TestPlaylistCreator_M3U(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(model.PlaylistFormatM3U, false)

	content := creator.CreatePlaylist(album)

	if content != "01track1.mp3\n02track2.mp3\n" {
		t.Errorf("M3U content = %q", content)
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)

	content := creator.CreatePlaylist(album)

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,Test Artist - track1") {
		t.Errorf("Extended M3U should contain #EXTINF for track1, got %q", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(model.PlaylistFormatPLS, false)

	content := creator.CreatePlaylist(album)

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=01track1.mp3") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries")
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(model.PlaylistFormatWPL, false)

	content := creator.CreatePlaylist(album)

	if !strings.Contains(content, "<?wpl") {
		t.Error("WPL should contain XML declaration")
	}
	if !strings.Contains(content, "<media src=\"02track2.mp3\"/>") {
		t.Error("WPL should contain media elements")
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	album := createTestAlbum()
	creator := NewPlaylistCreator(model.PlaylistFormatZPL, false)

	content := creator.CreatePlaylist(album)

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, "albumTitle=\"Test Album\"") {
		t.Error("ZPL should contain albumTitle attribute")
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	album := model.NewAlbum("/music/special")
	album.Artist = "Artist & Co"
	album.Title = "Album <Special>"
	album.Tracks = []*model.Track{
		model.NewTrack(album.Artist, album.Title, "Track & \"Quote\"", "1", "/music/special/01Track & Co.mp3"),
	}

	tests := []struct {
		format model.PlaylistFormat
		want   []string
	}{
		{model.PlaylistFormatWPL, []string{
			"<title>Album &lt;Special&gt;</title>",
			`<media src="01Track &amp; Co.mp3"/>`,
		}},
		{model.PlaylistFormatZPL, []string{
			`albumArtist="Artist &amp; Co"`,
			`trackTitle="Track &amp; &quot;Quote&quot;"`,
			`albumTitle="Album &lt;Special&gt;"`,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			content := NewPlaylistCreator(tt.format, false).CreatePlaylist(album)
			for _, want := range tt.want {
				if !strings.Contains(content, want) {
					t.Errorf("%s playlist missing %q:\n%s", tt.format, want, content)
				}
			}
			if strings.Contains(content, "<Special>") || strings.Contains(content, "& Co") {
				t.Errorf("%s playlist has unescaped text:\n%s", tt.format, content)
			}
		})
	}
}

func TestPlaylistPath(t *testing.T) {
	album := model.NewAlbum("/music/folder")
	album.Title = "What? Now"

	got := PlaylistPath(album, model.PlaylistFormatPLS)
	if got != "/music/folder/What(question) Now.pls" {
		t.Errorf("PlaylistPath() = %q", got)
	}

	album.Title = ""
	if got := PlaylistPath(album, model.PlaylistFormatM3U); got != "/music/folder/folder.m3u" {
		t.Errorf("PlaylistPath() without title = %q", got)
	}
}

func createTestAlbum() *model.Album {
	album := model.NewAlbum("/music/Test Album")
	album.Artist = "Test Artist"
	album.Title = "Test Album"
	album.Tracks = []*model.Track{
		model.NewTrack("Test Artist", "Test Album", "track1", "1", "/music/Test Album/01track1.mp3"),
		model.NewTrack("Test Artist", "Test Album", "track2", "2", "/music/Test Album/02track2.mp3"),
	}
	return album
}
