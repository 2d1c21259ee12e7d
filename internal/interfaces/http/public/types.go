package public

import (
	"time"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
)

type siteSettingsResponse struct {
	SiteName          string            `json:"siteName"`
	SiteDescription   string            `json:"siteDescription"`
	LogoURL           string            `json:"logoUrl,omitempty"`
	FaviconURL        string            `json:"faviconUrl,omitempty"`
	MetaTitle         string            `json:"metaTitle,omitempty"`
	MetaDescription   string            `json:"metaDescription,omitempty"`
	OGImageURL        string            `json:"ogImageUrl,omitempty"`
	GoogleAnalyticsID string            `json:"googleAnalyticsId,omitempty"`
	SocialMedia       map[string]string `json:"socialMedia"`
	Display           displayResponse   `json:"display"`
}

type displayResponse struct {
	PostsPerPage   int    `json:"postsPerPage"`
	ShowAuthorInfo bool   `json:"showAuthorInfo"`
	EnableComments bool   `json:"enableComments"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

type storeInfoResponse struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Phone          string                 `json:"phone"`
	Email          string                 `json:"email"`
	Address        addressResponse        `json:"address"`
	BusinessHours  []businessHourResponse `json:"businessHours"`
	AccessInfo     string                 `json:"accessInfo,omitempty"`
	ReservationURL string                 `json:"reservationUrl,omitempty"`
	Today          string                 `json:"today"`
	IsOpenNow      bool                   `json:"isOpenNow"`
}

type addressResponse struct {
	ZipCode    string `json:"zipCode"`
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
	Street     string `json:"street"`
	Building   string `json:"building,omitempty"`
}

type businessHourResponse struct {
	Day       string `json:"day"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
}

type authorResponse struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	PostCount   int    `json:"postCount"`
	EventCount  int    `json:"eventCount"`
}

type tagResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	PostCount  int    `json:"postCount"`
	EventCount int    `json:"eventCount"`
}

type postSummaryResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Excerpt     string            `json:"excerpt,omitempty"`
	FeaturedImg string            `json:"featuredImage,omitempty"`
	Category    *categoryResponse `json:"category,omitempty"`
	Tags        []tagResponse     `json:"tags"`
	Author      *authorResponse   `json:"author,omitempty"`
	PublishedAt *time.Time        `json:"publishedAt,omitempty"`
}

type postDetailResponse struct {
	postSummaryResponse
	Content  string            `json:"content"`
	Comments []commentResponse `json:"comments"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type eventSummaryResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	FeaturedImg string     `json:"featuredImage,omitempty"`
}

type eventDetailResponse struct {
	eventSummaryResponse
	Categories []categoryResponse `json:"categories"`
	Tags       []tagResponse      `json:"tags"`
}

func settingsToResponse(settings admindomain.SiteSettings) siteSettingsResponse {
	social := map[string]string{}
	if settings.SocialMedia.Twitter != "" {
		social["twitter"] = settings.SocialMedia.Twitter
	}
	if settings.SocialMedia.Facebook != "" {
		social["facebook"] = settings.SocialMedia.Facebook
	}
	if settings.SocialMedia.Instagram != "" {
		social["instagram"] = settings.SocialMedia.Instagram
	}
	if settings.SocialMedia.YouTube != "" {
		social["youtube"] = settings.SocialMedia.YouTube
	}
	if settings.SocialMedia.Line != "" {
		social["line"] = settings.SocialMedia.Line
	}
	return siteSettingsResponse{
		SiteName:          settings.SiteName,
		SiteDescription:   settings.SiteDescription,
		LogoURL:           settings.LogoURL,
		FaviconURL:        settings.FaviconURL,
		MetaTitle:         settings.MetaTitle,
		MetaDescription:   settings.MetaDescription,
		OGImageURL:        settings.OGImageURL,
		GoogleAnalyticsID: settings.GoogleAnalyticsID,
		SocialMedia:       social,
		Display: displayResponse{
			PostsPerPage:   settings.Display.PostsPerPage,
			ShowAuthorInfo: settings.Display.ShowAuthorInfo,
			EnableComments: settings.Display.EnableComments,
			PrimaryColor:   settings.Display.PrimaryColor,
			SecondaryColor: settings.Display.SecondaryColor,
		},
	}
}

func storeToResponse(store admindomain.StoreInfo) storeInfoResponse {
	hours := make([]businessHourResponse, 0, len(store.BusinessHours))
	for _, hour := range store.BusinessHours {
		hours = append(hours, businessHourResponse{
			Day:       hour.Day,
			IsOpen:    hour.IsOpen,
			OpenTime:  hour.OpenTime,
			CloseTime: hour.CloseTime,
		})
	}
	return storeInfoResponse{
		Name:        store.Name,
		Description: store.Description,
		Phone:       store.Phone,
		Email:       store.Email,
		Address: addressResponse{
			ZipCode:    store.Address.ZipCode,
			Prefecture: store.Address.Prefecture,
			City:       store.Address.City,
			Street:     store.Address.Street,
			Building:   store.Address.Building,
		},
		BusinessHours:  hours,
		AccessInfo:     store.AccessInfo,
		ReservationURL: store.ReservationURL,
	}
}

func categoryToResponse(category admindomain.Category) categoryResponse {
	return categoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		PostCount:   category.PostCount,
		EventCount:  category.EventCount,
	}
}

func tagToResponse(tag admindomain.Tag) tagResponse {
	return tagResponse{
		ID:         tag.ID,
		Name:       tag.Name,
		Slug:       tag.Slug,
		PostCount:  tag.PostCount,
		EventCount: tag.EventCount,
	}
}

func postToSummary(post admindomain.Post, showAuthor bool) postSummaryResponse {
	summary := postSummaryResponse{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		FeaturedImg: post.FeaturedImage,
		Tags:        make([]tagResponse, 0, len(post.Tags)),
		PublishedAt: post.PublishedAt,
	}
	if post.Category != nil {
		category := categoryToResponse(*post.Category)
		summary.Category = &category
	}
	for _, tag := range post.Tags {
		summary.Tags = append(summary.Tags, tagToResponse(tag))
	}
	if showAuthor && post.Author.ID != "" {
		summary.Author = &authorResponse{
			Name:           post.Author.DisplayName(),
			ProfilePicture: post.Author.ProfilePicture,
		}
	}
	return summary
}

func postToDetail(post admindomain.Post, comments []admindomain.Comment, showAuthor bool) postDetailResponse {
	detail := postDetailResponse{
		postSummaryResponse: postToSummary(post, showAuthor),
		Content:             post.Content,
		Comments:            make([]commentResponse, 0, len(comments)),
	}
	for _, comment := range comments {
		detail.Comments = append(detail.Comments, commentToResponse(comment))
	}
	return detail
}

func commentToResponse(comment admindomain.Comment) commentResponse {
	return commentResponse{
		ID:        comment.ID,
		Name:      comment.Name,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

func eventToSummary(event admindomain.Event) eventSummaryResponse {
	return eventSummaryResponse{
		ID:          event.ID,
		Title:       event.Title,
		Slug:        event.Slug,
		Description: event.Description,
		Location:    event.Location,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		FeaturedImg: event.FeaturedImage,
	}
}

func eventToDetail(event admindomain.Event) eventDetailResponse {
	detail := eventDetailResponse{
		eventSummaryResponse: eventToSummary(event),
		Categories:           make([]categoryResponse, 0, len(event.Categories)),
		Tags:                 make([]tagResponse, 0, len(event.Tags)),
	}
	for _, category := range event.Categories {
		detail.Categories = append(detail.Categories, categoryToResponse(category))
	}
	for _, tag := range event.Tags {
		detail.Tags = append(detail.Tags, tagToResponse(tag))
	}
	return detail
}
