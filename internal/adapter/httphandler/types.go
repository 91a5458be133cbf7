package httphandler

import "github.com/voicecart/voicecart/internal/core/domain"

type (
	Product struct {
		ID      int      `json:"id"`
		Name    string   `json:"name"`
		Price   float64  `json:"price"`
		Aliases []string `json:"aliases"`
	}

	Category struct {
		Name     string    `json:"name"`
		Emoji    string    `json:"emoji"`
		Products []Product `json:"products"`
	}

	CatalogPayload struct {
		Categories []Category `json:"categories"`
	}

	CatalogResponse struct {
		Success       bool           `json:"success"`
		Catalog       CatalogPayload `json:"catalog"`
		TotalProducts int            `json:"totalProducts"`
	}
)

type (
	VoiceCommandRequest struct {
		Command string `json:"command"`
	}

	// CommandAction mirrors a validated command. The product fields are
	// null exactly when the action did not resolve to a catalog entry.
	CommandAction struct {
		Action      string   `json:"action"`
		Product     string   `json:"product"`
		Quantity    int      `json:"quantity"`
		ProductID   *int     `json:"productId"`
		ProductName *string  `json:"productName"`
		Price       *float64 `json:"price"`
		Message     *string  `json:"message"`
	}

	VoiceCommandResponse struct {
		Actions            []CommandAction `json:"actions"`
		TotalActions       int             `json:"totalActions"`
		AvailableActions   int             `json:"availableActions"`
		UnavailableActions int             `json:"unavailableActions"`
	}
)

type (
	ChatRequest struct {
		Message string `json:"message"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}
)

type (
	SearchRequest struct {
		Query string `json:"query"`
	}

	SearchResult struct {
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Relevance string  `json:"relevance"`
		Reason    string  `json:"reason"`
	}

	SearchResponse struct {
		Success      bool           `json:"success"`
		Query        string         `json:"query"`
		Results      []SearchResult `json:"results"`
		TotalResults int            `json:"totalResults"`
	}
)

type (
	CartLine struct {
		ProductID int     `json:"productId"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Quantity  int     `json:"quantity"`
	}

	CartMonitorRequest struct {
		SessionID string     `json:"sessionId"`
		Cart      []CartLine `json:"cart"`
	}

	CartMonitorResponse struct {
		Success  bool       `json:"success"`
		Received []CartLine `json:"received"`
	}
)

type (
	AnalyticsCategory struct {
		Name         string   `json:"name"`
		ProductCount int      `json:"productCount"`
		Products     []string `json:"products"`
	}

	AnalyticsPriceRange struct {
		Min     float64 `json:"min"`
		Max     float64 `json:"max"`
		Average float64 `json:"average"`
	}

	AnalyticsStatus struct {
		CatalogLoaded     bool     `json:"catalogLoaded"`
		GeminiIntegration bool     `json:"geminiIntegration"`
		TelemetryEnabled  bool     `json:"telemetryEnabled"`
		Endpoints         []string `json:"endpoints"`
	}

	AnalyticsResponse struct {
		TotalProducts   int                 `json:"totalProducts"`
		TotalCategories int                 `json:"totalCategories"`
		Categories      []AnalyticsCategory `json:"categories"`
		PriceRange      AnalyticsPriceRange `json:"priceRange"`
		RAGStatus       AnalyticsStatus     `json:"ragStatus"`
	}
)

type ErrorResponse struct {
	Error string `json:"error"`
	Raw   string `json:"raw,omitempty"`
}

func toCommandAction(c domain.ValidatedCommand) CommandAction {
	a := CommandAction{
		Action:   string(c.Action),
		Product:  c.Product,
		Quantity: c.Quantity,
	}
	if c.Actionable() {
		id, name, price := c.ProductID, c.ProductName, c.Price
		a.ProductID = &id
		a.ProductName = &name
		a.Price = &price
	}
	if c.Message != "" {
		msg := c.Message
		a.Message = &msg
	}
	return a
}

func toCatalogResponse(c domain.Catalog) CatalogResponse {
	resp := CatalogResponse{
		Success:       true,
		TotalProducts: len(c.AllProducts()),
	}
	for _, cat := range c.Categories() {
		hc := Category{Name: cat.Name, Emoji: cat.Emoji}
		for _, p := range cat.Products {
			hc.Products = append(hc.Products, Product{
				ID:      p.ID,
				Name:    p.Name,
				Price:   p.Price,
				Aliases: p.Aliases,
			})
		}
		resp.Catalog.Categories = append(resp.Catalog.Categories, hc)
	}
	return resp
}

func toDomainSnapshot(req CartMonitorRequest) domain.CartSnapshot {
	s := domain.CartSnapshot{SessionID: req.SessionID}
	for _, line := range req.Cart {
		s.Lines = append(s.Lines, domain.CartLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
		s.Total += line.Price * float64(line.Quantity)
	}
	return s
}
