package email

// PreviewData holds sample variables per template for local previews.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserFirstName": "John",
	},
	TemplateAccountRemoved: {
		"UserFirstName": "John",
	},
}
