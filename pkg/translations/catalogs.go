package translations

import (
	"github.com/goliatone/go-adminkit/pkg/links"
	i18n "github.com/goliatone/go-i18n"
)

// Catalogs returns the default action title catalogs.
func Catalogs() i18n.Translations {
	return i18n.Translations{
		"en": newCatalog("en", map[string]string{
			"index":    "list",
			"show":     "show",
			"create":   "create",
			"add":      "add",
			"edit":     "edit",
			"update":   "update",
			"delete":   "delete",
			"restore":  "restore",
			"enable":   "enable",
			"disable":  "disable",
			"activate": "activate",
			"back":     "back",
			"cancel":   "cancel",
			"save":     "save",
		}),
		"es": newCatalog("es", map[string]string{
			"index":    "lista",
			"show":     "ver",
			"create":   "crear",
			"add":      "añadir",
			"edit":     "editar",
			"update":   "actualizar",
			"delete":   "eliminar",
			"restore":  "restaurar",
			"enable":   "activar",
			"disable":  "desactivar",
			"activate": "activar",
			"back":     "volver",
			"cancel":   "cancelar",
			"save":     "guardar",
		}),
		"fr": newCatalog("fr", map[string]string{
			"index":    "liste",
			"show":     "afficher",
			"create":   "créer",
			"add":      "ajouter",
			"edit":     "modifier",
			"update":   "mettre à jour",
			"delete":   "supprimer",
			"restore":  "restaurer",
			"enable":   "activer",
			"disable":  "désactiver",
			"activate": "activer",
			"back":     "retour",
			"cancel":   "annuler",
			"save":     "enregistrer",
		}),
	}
}

// newCatalog keys every action under the links translation namespace.
func newCatalog(locale string, actions map[string]string) *i18n.TranslationCatalog {
	catalog := &i18n.TranslationCatalog{
		Locale:   i18n.Locale{Code: locale},
		Messages: make(map[string]i18n.Message, len(actions)),
	}
	for action, title := range actions {
		msg := i18n.Message{}
		msg.SetContent(title)
		catalog.Messages[links.TitleKey(action)] = msg
	}
	return catalog
}
