package admin

import (
	"time"

	admindomain "github.com/agenda23/restaurant-media-api/internal/admin/domain"
)

// サイト設定のレスポンス。保存上の平坦なカラム名ではなく、
// 画面が期待する入れ子の形(socialMedia.* など)へ整形して返す。
type siteSettingsResponse struct {
	ID              string `json:"id"`
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	LogoURL         string `json:"logoUrl"`
	FaviconURL      string `json:"faviconUrl"`

	MetaTitle         string `json:"metaTitle"`
	MetaDescription   string `json:"metaDescription"`
	OGImageURL        string `json:"ogImageUrl"`
	GoogleAnalyticsID string `json:"googleAnalyticsId"`

	SocialMedia   socialMediaResponse   `json:"socialMedia"`
	Notifications notificationsResponse `json:"notifications"`
	Display       displayResponse       `json:"display"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type socialMediaResponse struct {
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
	Line      string `json:"line"`
}

type notificationsResponse struct {
	AdminEmail                  string `json:"adminEmail"`
	SendCommentNotification     bool   `json:"sendCommentNotification"`
	SendContactFormNotification bool   `json:"sendContactFormNotification"`
}

type displayResponse struct {
	PostsPerPage   int    `json:"postsPerPage"`
	ShowAuthorInfo bool   `json:"showAuthorInfo"`
	EnableComments bool   `json:"enableComments"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

type storeInfoResponse struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Phone          string                 `json:"phone"`
	Email          string                 `json:"email"`
	Address        addressResponse        `json:"address"`
	BusinessHours  []businessHourResponse `json:"businessHours"`
	AccessInfo     string                 `json:"accessInfo"`
	ReservationURL string                 `json:"reservationUrl"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

type addressResponse struct {
	ZipCode    string `json:"zipCode"`
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
	Street     string `json:"street"`
	Building   string `json:"building"`
}

type businessHourResponse struct {
	Day       string `json:"day"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

type postResponse struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Slug           string            `json:"slug"`
	Content        string            `json:"content"`
	Excerpt        string            `json:"excerpt"`
	Status         string            `json:"status"`
	PublishedAt    *time.Time        `json:"publishedAt,omitempty"`
	FeaturedImage  string            `json:"featuredImage"`
	SEOTitle       string            `json:"seoTitle"`
	SEODescription string            `json:"seoDescription"`
	Author         userResponse      `json:"author"`
	Category       *categoryResponse `json:"category,omitempty"`
	Tags           []tagResponse     `json:"tags"`
	CommentCount   int               `json:"commentCount"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

type eventResponse struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Slug          string             `json:"slug"`
	Description   string             `json:"description"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       *time.Time         `json:"endDate,omitempty"`
	Location      string             `json:"location"`
	Status        string             `json:"status"`
	FeaturedImage string             `json:"featuredImage"`
	Author        userResponse       `json:"author"`
	Categories    []categoryResponse `json:"categories"`
	Tags          []tagResponse      `json:"tags"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	PostCount   int       `json:"postCount"`
	EventCount  int       `json:"eventCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type tagResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	PostCount  int       `json:"postCount"`
	EventCount int       `json:"eventCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type commentResponse struct {
	ID         string    `json:"id"`
	PostID     string    `json:"postId"`
	PostTitle  string    `json:"postTitle"`
	PostSlug   string    `json:"postSlug"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Content    string    `json:"content"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type mediaResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Filename    string    `json:"filename"`
	Path        string    `json:"path"`
	URL         string    `json:"url,omitempty"`
	Type        string    `json:"type"`
	Size        int64     `json:"size"`
	Alt         string    `json:"alt"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type userResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	ProfilePicture string    `json:"profilePicture"`
	Role           string    `json:"role"`
	DisplayName    string    `json:"displayName"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type dashboardResponse struct {
	Posts           int64 `json:"posts"`
	PublishedPosts  int64 `json:"publishedPosts"`
	Events          int64 `json:"events"`
	UpcomingEvents  int64 `json:"upcomingEvents"`
	PendingComments int64 `json:"pendingComments"`
	Media           int64 `json:"media"`
	Users           int64 `json:"users"`
}

type settingEntryResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type postUpsertRequest struct {
	Title          string   `json:"title"`
	Slug           string   `json:"slug"`
	Content        string   `json:"content"`
	Excerpt        string   `json:"excerpt"`
	Status         string   `json:"status"`
	PublishedAt    string   `json:"publishedAt"`
	FeaturedImage  string   `json:"featuredImage"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
	CategoryID     string   `json:"categoryId"`
	TagIDs         []string `json:"tagIds"`
}

type eventUpsertRequest struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Location      string   `json:"location"`
	Status        string   `json:"status"`
	FeaturedImage string   `json:"featuredImage"`
	CategoryIDs   []string `json:"categoryIds"`
	TagIDs        []string `json:"tagIds"`
}

type taxonomyUpsertRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type commentApprovalRequest struct {
	Approved bool `json:"approved"`
}

type mediaRegisterRequest struct {
	Title       string `json:"title"`
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	Size        int64  `json:"size"`
	Alt         string `json:"alt"`
	Description string `json:"description"`
}

type mediaUpdateRequest struct {
	Title       string `json:"title"`
	Alt         string `json:"alt"`
	Description string `json:"description"`
}

type userCreateRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type userUpdateRequest struct {
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	ProfilePicture string `json:"profilePicture"`
	Role           string `json:"role"`
}

type passwordChangeRequest struct {
	Password string `json:"password"`
}

type settingValueRequest struct {
	Value string `json:"value"`
}

func settingsDomainToResponse(s admindomain.SiteSettings) siteSettingsResponse {
	return siteSettingsResponse{
		ID:                s.ID,
		SiteName:          s.SiteName,
		SiteDescription:   s.SiteDescription,
		LogoURL:           s.LogoURL,
		FaviconURL:        s.FaviconURL,
		MetaTitle:         s.MetaTitle,
		MetaDescription:   s.MetaDescription,
		OGImageURL:        s.OGImageURL,
		GoogleAnalyticsID: s.GoogleAnalyticsID,
		SocialMedia: socialMediaResponse{
			Twitter:   s.SocialMedia.Twitter,
			Facebook:  s.SocialMedia.Facebook,
			Instagram: s.SocialMedia.Instagram,
			YouTube:   s.SocialMedia.YouTube,
			Line:      s.SocialMedia.Line,
		},
		Notifications: notificationsResponse{
			AdminEmail:                  s.Notifications.AdminEmail,
			SendCommentNotification:     s.Notifications.SendCommentNotification,
			SendContactFormNotification: s.Notifications.SendContactFormNotification,
		},
		Display: displayResponse{
			PostsPerPage:   s.Display.PostsPerPage,
			ShowAuthorInfo: s.Display.ShowAuthorInfo,
			EnableComments: s.Display.EnableComments,
			PrimaryColor:   s.Display.PrimaryColor,
			SecondaryColor: s.Display.SecondaryColor,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func storeDomainToResponse(s admindomain.StoreInfo) storeInfoResponse {
	hours := make([]businessHourResponse, 0, len(s.BusinessHours))
	for _, hour := range s.BusinessHours {
		hours = append(hours, businessHourResponse{
			Day:       hour.Day,
			IsOpen:    hour.IsOpen,
			OpenTime:  hour.OpenTime,
			CloseTime: hour.CloseTime,
		})
	}
	return storeInfoResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Phone:       s.Phone,
		Email:       s.Email,
		Address: addressResponse{
			ZipCode:    s.Address.ZipCode,
			Prefecture: s.Address.Prefecture,
			City:       s.Address.City,
			Street:     s.Address.Street,
			Building:   s.Address.Building,
		},
		BusinessHours:  hours,
		AccessInfo:     s.AccessInfo,
		ReservationURL: s.ReservationURL,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func postDomainToResponse(p admindomain.Post) postResponse {
	resp := postResponse{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		Content:        p.Content,
		Excerpt:        p.Excerpt,
		Status:         string(p.Status),
		PublishedAt:    p.PublishedAt,
		FeaturedImage:  p.FeaturedImage,
		SEOTitle:       p.SEOTitle,
		SEODescription: p.SEODescription,
		Author:         userDomainToResponse(p.Author),
		Tags:           make([]tagResponse, 0, len(p.Tags)),
		CommentCount:   p.CommentCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Category != nil {
		category := categoryDomainToResponse(*p.Category)
		resp.Category = &category
	}
	for _, tag := range p.Tags {
		resp.Tags = append(resp.Tags, tagDomainToResponse(tag))
	}
	return resp
}

func eventDomainToResponse(e admindomain.Event) eventResponse {
	resp := eventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Slug:          e.Slug,
		Description:   e.Description,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Location:      e.Location,
		Status:        string(e.Status),
		FeaturedImage: e.FeaturedImage,
		Author:        userDomainToResponse(e.Author),
		Categories:    make([]categoryResponse, 0, len(e.Categories)),
		Tags:          make([]tagResponse, 0, len(e.Tags)),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	for _, category := range e.Categories {
		resp.Categories = append(resp.Categories, categoryDomainToResponse(category))
	}
	for _, tag := range e.Tags {
		resp.Tags = append(resp.Tags, tagDomainToResponse(tag))
	}
	return resp
}

func categoryDomainToResponse(c admindomain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		PostCount:   c.PostCount,
		EventCount:  c.EventCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func tagDomainToResponse(t admindomain.Tag) tagResponse {
	return tagResponse{
		ID:         t.ID,
		Name:       t.Name,
		Slug:       t.Slug,
		PostCount:  t.PostCount,
		EventCount: t.EventCount,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func commentDomainToResponse(c admindomain.Comment) commentResponse {
	return commentResponse{
		ID:         c.ID,
		PostID:     c.PostID,
		PostTitle:  c.PostTitle,
		PostSlug:   c.PostSlug,
		Name:       c.Name,
		Email:      c.Email,
		Content:    c.Content,
		IsApproved: c.IsApproved,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func mediaDomainToResponse(m admindomain.Media) mediaResponse {
	return mediaResponse{
		ID:          m.ID,
		Title:       m.Title,
		Filename:    m.Filename,
		Path:        m.Path,
		Type:        m.Type,
		Size:        m.Size,
		Alt:         m.Alt,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func userDomainToResponse(u admindomain.User) userResponse {
	return userResponse{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
		Role:           string(u.Role),
		DisplayName:    u.DisplayName(),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
