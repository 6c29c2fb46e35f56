package entity

// Button: o lleva Callback (token opaco) o URL, nunca los dos.
type Button struct {
	Label    string `json:"label"`
	Callback string `json:"callback,omitempty"`
	URL      string `json:"url,omitempty"`
}

type ButtonRow []Button

type Keyboard []ButtonRow

// OutboundMessage es una salida hacia la plataforma: texto con markup
// liviano (negrita, cursiva, bullets) más media por URL y teclado inline.
type OutboundMessage struct {
	Text     string   `json:"text"`
	PhotoURL string   `json:"photo_url,omitempty"`
	VideoURL string   `json:"video_url,omitempty"`
	Keyboard Keyboard `json:"keyboard,omitempty"`
}

func CallbackButton(label, token string) Button {
	return Button{Label: label, Callback: token}
}

func URLButton(label, url string) Button {
	return Button{Label: label, URL: url}
}
