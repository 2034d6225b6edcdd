package i18n

var dictionaries = map[string]map[string]any{
	"en": {
		"common": map[string]any{
			"loading": "Loading...",
			"save":    "Save",
			"cancel":  "Cancel",
			"delete":  "Delete",
			"back":    "Back",
			"yes":     "Yes",
			"no":      "No",
		},
		"login": map[string]any{
			"title":      "Sign in",
			"register":   "Create account",
			"email":      "Email",
			"password":   "Password",
			"name":       "Name",
			"signingIn":  "Signing in...",
			"creating":   "Creating account...",
			"switchHint": "Tab: next field",
		},
		"dashboard": map[string]any{
			"title":      "Projects",
			"empty":      "No projects yet. Press 'n' to create one.",
			"archived":   "Archived",
			"completed":  "Completed by {{name}}",
			"taskCount":  "{{count}} tasks",
			"submitting": "Submitting...",
			"deleting":   "Deleting...",
			"archivedOk": "Project hidden from dashboard",
		},
		"create": map[string]any{
			"title":    "New project",
			"creating": "Creating...",
			"created":  "Project \"{{name}}\" created",
		},
		"participants": map[string]any{
			"title":      "Participants",
			"invite":     "Invite",
			"inviting":   "Inviting...",
			"inviteLink": "Invite link: {{link}}",
			"unlinked":   "not registered yet",
			"assigning":  "Assigning...",
		},
		"calendar": map[string]any{
			"title": "Calendar",
			"empty": "Nothing due in this window",
		},
		"history": map[string]any{
			"title": "History",
			"empty": "No completed projects yet",
		},
		"invite": map[string]any{
			"title":     "Accept invite",
			"token":     "Invite token",
			"accepting": "Joining...",
			"accepted":  "Joined \"{{name}}\"",
		},
	},
	"de": {
		"common": map[string]any{
			"loading": "Laden...",
			"save":    "Speichern",
			"cancel":  "Abbrechen",
			"delete":  "Löschen",
			"back":    "Zurück",
			"yes":     "Ja",
			"no":      "Nein",
		},
		"login": map[string]any{
			"title":      "Anmelden",
			"register":   "Konto erstellen",
			"email":      "E-Mail",
			"password":   "Passwort",
			"name":       "Name",
			"signingIn":  "Anmeldung läuft...",
			"creating":   "Konto wird erstellt...",
			"switchHint": "Tab: nächstes Feld",
		},
		"dashboard": map[string]any{
			"title":      "Projekte",
			"empty":      "Noch keine Projekte. Mit 'n' ein neues erstellen.",
			"archived":   "Archiviert",
			"completed":  "Abgeschlossen von {{name}}",
			"taskCount":  "{{count}} Aufgaben",
			"submitting": "Wird eingereicht...",
			"deleting":   "Wird gelöscht...",
			"archivedOk": "Projekt vom Dashboard ausgeblendet",
		},
		"create": map[string]any{
			"title":    "Neues Projekt",
			"creating": "Wird erstellt...",
			"created":  "Projekt \"{{name}}\" erstellt",
		},
		"participants": map[string]any{
			"title":      "Teilnehmer",
			"invite":     "Einladen",
			"inviting":   "Wird eingeladen...",
			"inviteLink": "Einladungslink: {{link}}",
			"unlinked":   "noch nicht registriert",
			"assigning":  "Wird zugewiesen...",
		},
		"calendar": map[string]any{
			"title": "Kalender",
			"empty": "Nichts fällig in diesem Zeitraum",
		},
		"history": map[string]any{
			"title": "Verlauf",
			"empty": "Noch keine abgeschlossenen Projekte",
		},
		"invite": map[string]any{
			"title":     "Einladung annehmen",
			"token":     "Einladungstoken",
			"accepting": "Beitritt läuft...",
			"accepted":  "\"{{name}}\" beigetreten",
		},
	},
}
