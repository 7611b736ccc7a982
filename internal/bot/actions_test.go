package bot

import "testing"

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		key     string
		payload string
		want    Action
		ok      bool
	}{
		{cbPageNext, "", Action{Kind: ActionAdvance}, true},
		{cbPagePrev, "", Action{Kind: ActionRetreat}, true},
		{cbListClose, "", Action{Kind: ActionDismiss}, true},
		{cbSongPick, "12345", Action{Kind: ActionSelect, SongID: "12345"}, true},
		{cbSetLang, "uz", Action{Kind: ActionSetLanguage, Language: "uz"}, true},
		{cbSongPick, "", Action{}, false},
		{cbSetLang, "", Action{}, false},
		{"bogus", "x", Action{}, false},
		{"", "", Action{}, false},
	}
	for _, tt := range tests {
		got, ok := DecodeAction(tt.key, tt.payload)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DecodeAction(%q, %q) = %+v, %v; want %+v, %v",
				tt.key, tt.payload, got, ok, tt.want, tt.ok)
		}
	}
}
