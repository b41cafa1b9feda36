package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "enum").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "parse_error":
			return "解析エラー"
		case "invalid_type":
			return "型が不正です"
		case "invalid_enum":
			return "列挙値が不正です"
		case "union_no_match":
			return "どの候補の形にも一致しません"
		case "required":
			return "必須プロパティが不足しています"
		case "conflict":
			return "指定が矛盾しています"
		}
	default: // "en"
		switch code {
		case "parse_error":
			return "parse error"
		case "invalid_type":
			return "invalid type"
		case "invalid_enum":
			return "invalid enum value"
		case "union_no_match":
			return "value matches no candidate shape"
		case "required":
			return "required property missing"
		case "conflict":
			return "conflicting specification"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
