package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type User struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SigninResponse struct {
	AccessToken string `json:"access_token"`
}

type Article struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Author      User   `json:"author"`
}

type ArticleList struct {
	Items []Article `json:"items"`
	Total int64     `json:"total"`
}

func (c *APIClient) Signup(email, password, name string) (*User, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	var user User
	if err := c.post("/auth/signup", body, "", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *APIClient) Signin(email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp SigninResponse
	if err := c.post("/auth/signin", body, "", &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *APIClient) CreateArticle(token, title, description, content string) (*Article, error) {
	body := map[string]string{"title": title, "description": description, "content": content}
	var article Article
	if err := c.post("/article", body, token, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *APIClient) ListArticles(pageSize, pageIndex int) (*ArticleList, error) {
	url := fmt.Sprintf("%s/article/list?pageSize=%d&pageIndex=%d", c.baseURL, pageSize, pageIndex)
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var list ArticleList
	if err := decodeResponse(resp, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *APIClient) post(path string, body any, token string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed (%d): %s", resp.StatusCode, string(raw))
	}
	return json.Unmarshal(raw, out)
}
