package bot

// Callback keys baked into inline buttons. The router extracts the key
// and payload from telebot's \f<unique>|<payload> encoding.
const (
	cbPageNext  = "song_page_next"
	cbPagePrev  = "song_page_prev"
	cbListClose = "song_list_close"
	cbSongPick  = "song_pick"
	cbSetLang   = "set_lang"
)

// ActionKind enumerates what a listing callback asks for.
type ActionKind int

const (
	ActionAdvance ActionKind = iota
	ActionRetreat
	ActionDismiss
	ActionSelect
	ActionSetLanguage
)

// Action is a decoded callback. SongID is set for ActionSelect,
// Language for ActionSetLanguage.
type Action struct {
	Kind     ActionKind
	SongID   string
	Language string
}

// DecodeAction maps a callback key and payload to an Action. Unknown
// keys and missing payloads report false.
func DecodeAction(key, payload string) (Action, bool) {
	switch key {
	case cbPageNext:
		return Action{Kind: ActionAdvance}, true
	case cbPagePrev:
		return Action{Kind: ActionRetreat}, true
	case cbListClose:
		return Action{Kind: ActionDismiss}, true
	case cbSongPick:
		if payload == "" {
			return Action{}, false
		}
		return Action{Kind: ActionSelect, SongID: payload}, true
	case cbSetLang:
		if payload == "" {
			return Action{}, false
		}
		return Action{Kind: ActionSetLanguage, Language: payload}, true
	}
	return Action{}, false
}
