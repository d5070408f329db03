package models

// Language is a selectable native language. Value is what the backend
// receives, Label is what the picker shows.
type Language struct {
	Label string
	Value string
}

// DefaultLanguage is used until the user picks another one.
const DefaultLanguage = "English"

// Languages is the list offered by the language picker.
var Languages = []Language{
	{Label: "Arabic", Value: "Arabic"},
	{Label: "Bengali", Value: "Bengali"},
	{Label: "Chinese (Mandarin)", Value: "Chinese"},
	{Label: "Dutch", Value: "Dutch"},
	{Label: "English", Value: "English"},
	{Label: "French", Value: "French"},
	{Label: "German", Value: "German"},
	{Label: "Greek", Value: "Greek"},
	{Label: "Hindi", Value: "Hindi"},
	{Label: "Indonesian", Value: "Indonesian"},
	{Label: "Italian", Value: "Italian"},
	{Label: "Japanese", Value: "Japanese"},
	{Label: "Korean", Value: "Korean"},
	{Label: "Persian", Value: "Persian"},
	{Label: "Polish", Value: "Polish"},
	{Label: "Portuguese", Value: "Portuguese"},
	{Label: "Russian", Value: "Russian"},
	{Label: "Spanish", Value: "Spanish"},
	{Label: "Swahili", Value: "Swahili"},
	{Label: "Thai", Value: "Thai"},
	{Label: "Turkish", Value: "Turkish"},
	{Label: "Ukrainian", Value: "Ukrainian"},
	{Label: "Urdu", Value: "Urdu"},
	{Label: "Vietnamese", Value: "Vietnamese"},
}
