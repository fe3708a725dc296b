package admin

import (
	"errors"
	"net/http"
	"strings"

	adminapp "github.com/hoshloop/hoshloop-services/api/internal/admin/application"
	admindomain "github.com/hoshloop/hoshloop-services/api/internal/admin/domain"
	"github.com/hoshloop/hoshloop-services/api/internal/interfaces/http/common"
)

// requireUser pulls the authenticated owner from the request context. The
// auth middleware guarantees presence on guarded routes; a miss means the
// route was mounted without it.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (common.AuthenticatedUser, bool) {
	user, ok := common.UserFromContext(r.Context())
	if !ok || strings.TrimSpace(user.RestaurantID) == "" {
		common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
		return common.AuthenticatedUser{}, false
	}
	return user, true
}

// writeServiceError maps application errors onto HTTP codes. Not-found
// covers cross-tenant access too, so probing never confirms a foreign id.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, logContext string) {
	switch {
	case errors.Is(err, adminapp.ErrNotFound):
		common.WriteError(h.logger, w, http.StatusNotFound, "not found")
	case errors.Is(err, adminapp.ErrEmailTaken):
		common.WriteError(h.logger, w, http.StatusConflict, err.Error())
	case errors.Is(err, adminapp.ErrInvalidCredentials):
		common.WriteError(h.logger, w, http.StatusUnauthorized, err.Error())
	default:
		h.logger.Printf("%s: %v", logContext, err)
		common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
	}
}

func pagingFromQuery(r *http.Request) adminapp.Paging {
	query := r.URL.Query()
	page := common.PositiveIntOr(query.Get("page"), 1)
	limit := common.PositiveIntOr(query.Get("limit"), 20)
	return adminapp.Paging{
		Page:      page,
		Limit:     limit,
		SortBy:    strings.TrimSpace(query.Get("sortBy")),
		SortOrder: strings.TrimSpace(query.Get("sortOrder")),
	}
}

func accountDomainToResponse(account admindomain.Account) accountResponse {
	return accountResponse{
		ID:           account.ID,
		Email:        account.Email.String(),
		Name:         account.Name,
		RestaurantID: account.RestaurantID,
	}
}

func restaurantDomainToResponse(restaurant admindomain.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:            restaurant.ID,
		Name:          restaurant.Name,
		Description:   restaurant.Description,
		Address:       restaurant.Address,
		Phone:         restaurant.Phone,
		GooglePlaceID: restaurant.GooglePlaceID,
		Appearance:    restaurant.Appearance,
		CreatedAt:     restaurant.CreatedAt,
		UpdatedAt:     restaurant.UpdatedAt,
	}
}

func formDomainToResponse(form admindomain.FeedbackForm) formResponse {
	return formResponse{
		ID:              form.ID,
		RestaurantID:    form.RestaurantID,
		Name:            form.Name,
		Description:     form.Description,
		ThankYouMessage: form.ThankYouMessage,
		Active:          form.Active,
		CreatedAt:       form.CreatedAt,
		UpdatedAt:       form.UpdatedAt,
	}
}

func questionDomainToResponse(question admindomain.Question) questionResponse {
	return questionResponse{
		ID:          question.ID,
		FormID:      question.FormID,
		Text:        question.Text,
		Description: question.Description,
		Type:        question.Type,
		Required:    question.Required,
		Options:     question.Options.Strings(),
		MaxRating:   question.MaxRating,
		Placeholder: question.Placeholder,
		Order:       question.Order,
	}
}

func responseRecordToResponse(record adminapp.ResponseRecord) responseResponse {
	answers := make([]answerResponse, 0, len(record.Answers))
	for _, answer := range record.Answers {
		answers = append(answers, answerResponse{
			QuestionID: answer.QuestionID,
			Type:       answer.Type,
			Value:      answer.Value,
		})
	}
	return responseResponse{
		ID:            record.ID,
		FormID:        record.FormID,
		RestaurantID:  record.RestaurantID,
		VisitID:       record.VisitID,
		CustomerPhone: record.CustomerPhone,
		Answers:       answers,
		SubmittedAt:   record.SubmittedAt,
	}
}

func questionAnalyticsToResponse(qa adminapp.QuestionAnalytics) questionAnalyticsResponse {
	distribution := make([]optionCountResponse, 0, len(qa.Distribution))
	for _, bucket := range qa.Distribution {
		distribution = append(distribution, optionCountResponse{Option: bucket.Option, Count: bucket.Count})
	}
	return questionAnalyticsResponse{
		QuestionID:    qa.QuestionID,
		Text:          qa.Text,
		Type:          qa.Type,
		AnswerCount:   qa.AnswerCount,
		AverageRating: qa.AverageRating,
		Distribution:  distribution,
		TextSamples:   qa.TextSamples,
	}
}

func categoryDomainToResponse(category admindomain.MenuCategory) categoryResponse {
	return categoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Active:      category.Active,
		Order:       category.Order,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func itemDomainToResponse(item admindomain.MenuItem) itemResponse {
	return itemResponse{
		ID:          item.ID,
		CategoryID:  item.CategoryID,
		Name:        item.Name,
		Description: item.Description,
		PriceCents:  item.PriceCents,
		Active:      item.Active,
		Tags:        item.Tags,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (h *Handler) tableDomainToResponse(table admindomain.Table) tableResponse {
	feedbackURL := ""
	if h.feedbackURL != nil {
		feedbackURL = h.feedbackURL(table.RestaurantID, table.QRToken)
	}
	return tableResponse{
		ID:          table.ID,
		Name:        table.Name,
		QRToken:     table.QRToken,
		FeedbackURL: feedbackURL,
		CreatedAt:   table.CreatedAt,
	}
}
