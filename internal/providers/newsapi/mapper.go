package newsapi

import "family-brief-service/internal/domain"

func mapArticle(a articleResponse) domain.Article {
	return domain.Article{
		Title:       a.Title,
		Description: a.Description,
		Source:      a.Source.Name,
		PublishedAt: a.PublishedAt,
		URL:         a.URL,
	}
}
