package whatsapp

import (
	"net/http"
)

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(accessToken, phoneNumberID, graphAPIURL string, httpClient *http.Client) *Client {
	return &Client{
		config: Config{
			AccessToken:   accessToken,
			PhoneNumberID: phoneNumberID,
			GraphAPIURL:   graphAPIURL,
		},
		httpClient: httpClient,
	}
}

func (c *Client) messagesURL() string {
	return c.config.GraphAPIURL + "/" + c.config.PhoneNumberID + "/messages"
}
