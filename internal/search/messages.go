package search

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys double as the English copy.
const (
	keyErrorMessage   = "Something went wrong, please try again later 😅"
	keyAlertTitle     = "Search for %s?"
	keyAlertSubtitle  = "This will filter the superhero list."
	keyAlertPrimary   = "Search"
	keyAlertSecondary = "Cancel"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, keyErrorMessage, "Algo deu errado, tente novamente mais tarde 😅")
	message.SetString(lang, keyAlertTitle, "Buscar por %s?")
	message.SetString(lang, keyAlertSubtitle, "Isso vai filtrar a lista de super-heróis.")
	message.SetString(lang, keyAlertPrimary, "Buscar")
	message.SetString(lang, keyAlertSecondary, "Cancelar")
}
