package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// authorize returns an HTTP client for the requested scopes, using the cached tokens
// in the workdir if they exist and prompting for an authorization code otherwise.
func authorize(credentials string, scopes []string, workdir string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, err
	}

	return getClient(tokensFile(credentials, scopes, workdir), config)
}

func tokensFile(credentials string, scopes []string, workdir string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(workdir, fmt.Sprintf("%s.%s", name, tokenSuffix(scopes)))
}

func tokenSuffix(scopes []string) string {
	for _, scope := range scopes {
		if strings.HasPrefix(scope, CLASSROOM) {
			return "classroom"
		}
	}

	for _, scope := range scopes {
		if strings.HasPrefix(scope, SHEETS) {
			return "sheets"
		}
	}

	return "tokens"
}

func getClient(tokens string, config *oauth2.Config) (*http.Client, error) {
	token, err := tokenFromFile(tokens)
	if err != nil {
		if token, err = getTokenFromWeb(config); err != nil {
			return nil, err
		} else if err := saveToken(tokens, token); err != nil {
			return nil, err
		}
	}

	return config.Client(context.Background(), token), nil
}

func getTokenFromWeb(config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code: \n%v\n", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(context.TODO(), code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	return token, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)

	return token, err
}

func saveToken(path string, token *oauth2.Token) error {
	infof("Saving credential file to: %s", path)

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token (%v)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
