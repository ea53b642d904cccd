package newsapi

const providerName = "newsapi"

type headlinesResponse struct {
	Status   string            `json:"status"`
	Articles []articleResponse `json:"articles"`
}

type articleResponse struct {
	Source      sourceResponse `json:"source"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	PublishedAt string         `json:"publishedAt"`
}

type sourceResponse struct {
	Name string `json:"name"`
}
