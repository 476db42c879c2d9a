package domain

const deepLinkScheme = "status-im://"

// DeepLink builds the universal link of a chat.
// Unknown kinds get no prefix and routing is left to the app.
func DeepLink(chatID ChatID, kind ChatKind) string {
	path := ""
	switch kind {
	case OneToOne:
		path = "p/"
	case PrivateGroup:
		path = "g/args?a2="
	}
	return deepLinkScheme + path + string(chatID)
}
