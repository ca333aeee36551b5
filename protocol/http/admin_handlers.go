package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DARK-V-98/flycargolanka-sub000/database"
	"github.com/DARK-V-98/flycargolanka-sub000/middleware/authentication"
	"github.com/DARK-V-98/flycargolanka-sub000/service"
)

type adminLoginRequest struct {
	Key string `json:"key"`
}

func (a *App) adminLogin(w http.ResponseWriter, r *http.Request) {
	if strings.TrimSpace(a.Config.AdminKey) == "" || strings.TrimSpace(a.Config.AdminJWTSecret) == "" {
		log.Println("admin login rejected: admin credentials not configured")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "admin access not configured"})
		return
	}

	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Key) != a.Config.AdminKey {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "invalid admin key"})
		return
	}

	token, err := service.SignAdminToken(a.Config.AdminJWTSecret)
	if err != nil {
		log.Println("failed to sign admin token:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to issue token"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authentication.SessionCookieName(),
		Value:    token,
		Path:     "/admin",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// ------------------------------
// Rate table management
// ------------------------------

func (a *App) adminListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := a.Store.ListCountries()
	if err != nil {
		log.Println("failed to list countries:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to list countries"})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"countries": countries})
}

func (a *App) adminSaveCountry(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" && strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			name = strings.TrimSpace(body.Name)
		}
	}
	if name == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "country name is required"})
		return
	}

	if err := a.Store.SaveCountry(name); err != nil {
		log.Println("failed to save country:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to save country"})
		return
	}

	if wantsHTML(r) {
		http.Redirect(w, r, "/admin/rates?country="+name, http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"country": name})
}

type bandPayload struct {
	Label             string   `json:"label"`
	WeightKg          float64  `json:"weight_kg"`
	NdEconomyPrice    *float64 `json:"nd_economy_price"`
	NdEconomyEnabled  bool     `json:"nd_economy_enabled"`
	NdExpressPrice    *float64 `json:"nd_express_price"`
	NdExpressEnabled  bool     `json:"nd_express_enabled"`
	DocEconomyPrice   *float64 `json:"doc_economy_price"`
	DocEconomyEnabled bool     `json:"doc_economy_enabled"`
	DocExpressPrice   *float64 `json:"doc_express_price"`
	DocExpressEnabled bool     `json:"doc_express_enabled"`
}

type bandResponse struct {
	ID int64 `json:"id"`
	bandPayload
}

func bandResponseFromRecord(rec database.WeightBandRecord) bandResponse {
	return bandResponse{
		ID: rec.ID,
		bandPayload: bandPayload{
			Label:             rec.Label,
			WeightKg:          rec.WeightKg,
			NdEconomyPrice:    nullableFloat(rec.NdEconomyPrice),
			NdEconomyEnabled:  rec.NdEconomyEnabled,
			NdExpressPrice:    nullableFloat(rec.NdExpressPrice),
			NdExpressEnabled:  rec.NdExpressEnabled,
			DocEconomyPrice:   nullableFloat(rec.DocEconomyPrice),
			DocEconomyEnabled: rec.DocEconomyEnabled,
			DocExpressPrice:   nullableFloat(rec.DocExpressPrice),
			DocExpressEnabled: rec.DocExpressEnabled,
		},
	}
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	value := v.Float64
	return &value
}

func nullFloatFromPtr(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func (a *App) adminListBands(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")

	records, err := a.Store.LoadWeightBands(r.Context(), country)
	if err != nil {
		log.Println("failed to load weight bands:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to load bands"})
		return
	}

	bands := make([]bandResponse, 0, len(records))
	for _, rec := range records {
		bands = append(bands, bandResponseFromRecord(rec))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"country": country,
		"bands":   bands,
	})
}

func (a *App) adminSaveBand(w http.ResponseWriter, r *http.Request) {
	country := strings.TrimSpace(chi.URLParam(r, "country"))

	var payload bandPayload
	var err error
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		err = json.NewDecoder(r.Body).Decode(&payload)
	} else {
		payload, err = bandPayloadFromForm(r)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid band payload"})
		return
	}

	if strings.TrimSpace(payload.Label) == "" || payload.WeightKg <= 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "label and a positive weight_kg are required"})
		return
	}

	exists, err := a.Store.CountryExists(country)
	if err != nil {
		log.Println("failed to check country:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to save band"})
		return
	}
	if !exists {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "country is not configured"})
		return
	}

	record := database.WeightBandRecord{
		Country:           country,
		Label:             strings.TrimSpace(payload.Label),
		WeightKg:          payload.WeightKg,
		NdEconomyPrice:    nullFloatFromPtr(payload.NdEconomyPrice),
		NdEconomyEnabled:  payload.NdEconomyEnabled,
		NdExpressPrice:    nullFloatFromPtr(payload.NdExpressPrice),
		NdExpressEnabled:  payload.NdExpressEnabled,
		DocEconomyPrice:   nullFloatFromPtr(payload.DocEconomyPrice),
		DocEconomyEnabled: payload.DocEconomyEnabled,
		DocExpressPrice:   nullFloatFromPtr(payload.DocExpressPrice),
		DocExpressEnabled: payload.DocExpressEnabled,
	}
	if err := a.Store.SaveWeightBand(r.Context(), record); err != nil {
		log.Println("failed to save weight band:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to save band"})
		return
	}

	if wantsHTML(r) {
		http.Redirect(w, r, "/admin/rates?country="+country+"&saved=1", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func bandPayloadFromForm(r *http.Request) (bandPayload, error) {
	if err := r.ParseForm(); err != nil {
		return bandPayload{}, err
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("weight_kg")), 64)
	if err != nil {
		return bandPayload{}, err
	}
	payload := bandPayload{
		Label:             r.FormValue("label"),
		WeightKg:          weight,
		NdEconomyEnabled:  r.FormValue("nd_economy_enabled") != "",
		NdExpressEnabled:  r.FormValue("nd_express_enabled") != "",
		DocEconomyEnabled: r.FormValue("doc_economy_enabled") != "",
		DocExpressEnabled: r.FormValue("doc_express_enabled") != "",
	}
	payload.NdEconomyPrice, err = optionalPrice(r.FormValue("nd_economy_price"))
	if err != nil {
		return bandPayload{}, err
	}
	payload.NdExpressPrice, err = optionalPrice(r.FormValue("nd_express_price"))
	if err != nil {
		return bandPayload{}, err
	}
	payload.DocEconomyPrice, err = optionalPrice(r.FormValue("doc_economy_price"))
	if err != nil {
		return bandPayload{}, err
	}
	payload.DocExpressPrice, err = optionalPrice(r.FormValue("doc_express_price"))
	if err != nil {
		return bandPayload{}, err
	}
	return payload, nil
}

func optionalPrice(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func (a *App) adminDeleteBand(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	bandID, err := strconv.ParseInt(chi.URLParam(r, "bandID"), 10, 64)
	if err != nil || bandID <= 0 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid band id"})
		return
	}

	if err := a.Store.DeleteWeightBand(r.Context(), bandID, country); err != nil {
		log.Println("failed to delete weight band:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to delete band"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ------------------------------
// Bookings
// ------------------------------

func (a *App) adminListBookings(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	bookings, hasNext, err := a.Store.LoadBookingsPage(limit, offset)
	if err != nil {
		log.Println("failed to list bookings:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to list bookings"})
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingResponseFromRecord(b))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bookings": out,
		"has_next": hasNext,
	})
}

func (a *App) adminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	err := a.Bookings.AdvanceOrderStatus(bookingID, strings.TrimSpace(req.Status))
	if err != nil {
		if errors.Is(err, database.ErrBookingNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "booking not found"})
			return
		}
		if errors.Is(err, service.ErrOrderTransitionNotAllowed) {
			writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		log.Println("failed to update order status:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to update status"})
		return
	}

	log.Printf("order %s moved to %s", bookingID, req.Status)
	writeJSON(w, http.StatusOK, map[string]string{
		"booking_id": bookingID,
		"status":     req.Status,
	})
}

// ------------------------------
// NIC verification queue
// ------------------------------

type nicResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	NICNumber string `json:"nic_number"`
	FrontURL  string `json:"front_url"`
	BackURL   string `json:"back_url"`
	Status    string `json:"status"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
}

func nicResponseFromRecord(v database.NICVerification) nicResponse {
	return nicResponse{
		ID:        v.ID,
		BookingID: v.BookingID,
		NICNumber: v.NICNumber,
		FrontURL:  "/admin/files/nic_documents/" + v.FrontFile,
		BackURL:   "/admin/files/nic_documents/" + v.BackFile,
		Status:    v.Status,
		Note:      v.Note,
		CreatedAt: v.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func (a *App) adminListNIC(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	verifications, err := a.Store.LoadPendingNICVerifications(limit)
	if err != nil {
		log.Println("failed to list nic verifications:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to list verifications"})
		return
	}
	out := make([]nicResponse, 0, len(verifications))
	for _, v := range verifications {
		out = append(out, nicResponseFromRecord(v))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pending": out})
}

func (a *App) adminApproveNIC(w http.ResponseWriter, r *http.Request) {
	a.reviewNIC(w, r, database.NICApproved)
}

func (a *App) adminRejectNIC(w http.ResponseWriter, r *http.Request) {
	a.reviewNIC(w, r, database.NICRejected)
}

func (a *App) reviewNIC(w http.ResponseWriter, r *http.Request, status string) {
	verificationID := chi.URLParam(r, "verificationID")

	var req struct {
		Note string `json:"note"`
	}
	// A body is optional for approvals.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if status == database.NICRejected && strings.TrimSpace(req.Note) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "a note is required when rejecting"})
		return
	}

	if err := a.Store.UpdateNICStatus(verificationID, status, strings.TrimSpace(req.Note)); err != nil {
		if errors.Is(err, database.ErrNICNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "verification not found"})
			return
		}
		log.Println("failed to update nic status:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to update verification"})
		return
	}

	log.Printf("nic verification %s marked %s", verificationID, status)
	writeJSON(w, http.StatusOK, map[string]string{
		"id":     verificationID,
		"status": status,
	})
}

// ------------------------------
// Special offers
// ------------------------------

func (a *App) adminListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := a.Store.LoadOffers(false)
	if err != nil {
		log.Println("failed to list offers:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to list offers"})
		return
	}
	writeJSON(w, http.StatusOK, offersResponse(offers))
}

func (a *App) adminSaveOffer(w http.ResponseWriter, r *http.Request) {
	var req offerResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "title is required"})
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	offer := database.SpecialOffer{
		ID:          req.ID,
		Country:     req.Country,
		Title:       req.Title,
		Description: req.Description,
		DiscountPct: req.DiscountPct,
		Active:      req.Active,
	}
	if err := a.Store.SaveOffer(offer); err != nil {
		log.Println("failed to save offer:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to save offer"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": offer.ID})
}

func (a *App) adminDeleteOffer(w http.ResponseWriter, r *http.Request) {
	offerID := chi.URLParam(r, "offerID")
	if err := a.Store.DeleteOffer(offerID); err != nil {
		log.Println("failed to delete offer:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to delete offer"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ------------------------------
// Rates admin page
// ------------------------------

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

type ratesPageRow struct {
	Label      string
	WeightKg   string
	NdEconomy  string
	NdExpress  string
	DocEconomy string
	DocExpress string
}

type ratesPageData struct {
	Countries []string
	Selected  string
	Bands     []ratesPageRow
	Message   string
}

func ratesPageRowFromRecord(rec database.WeightBandRecord) ratesPageRow {
	return ratesPageRow{
		Label:      rec.Label,
		WeightKg:   strconv.FormatFloat(rec.WeightKg, 'f', 2, 64),
		NdEconomy:  cellDisplay(rec.NdEconomyPrice, rec.NdEconomyEnabled),
		NdExpress:  cellDisplay(rec.NdExpressPrice, rec.NdExpressEnabled),
		DocEconomy: cellDisplay(rec.DocEconomyPrice, rec.DocEconomyEnabled),
		DocExpress: cellDisplay(rec.DocExpressPrice, rec.DocExpressEnabled),
	}
}

func cellDisplay(price sql.NullFloat64, enabled bool) string {
	if !enabled {
		return "off"
	}
	if !price.Valid {
		return "unset"
	}
	return strconv.FormatFloat(price.Float64, 'f', 0, 64)
}

func (a *App) adminRatesPage(w http.ResponseWriter, r *http.Request) {
	countries, err := a.Store.ListCountries()
	if err != nil {
		log.Println("failed to load countries:", err)
		http.Error(w, "failed to load countries", http.StatusInternalServerError)
		return
	}

	selected := strings.TrimSpace(r.URL.Query().Get("country"))
	if selected == "" && len(countries) > 0 {
		selected = countries[0]
	}

	data := ratesPageData{Countries: countries, Selected: selected}
	if selected != "" {
		records, err := a.Store.LoadWeightBands(r.Context(), selected)
		if err != nil {
			log.Println("failed to load weight bands:", err)
			http.Error(w, "failed to load bands", http.StatusInternalServerError)
			return
		}
		for _, rec := range records {
			data.Bands = append(data.Bands, ratesPageRowFromRecord(rec))
		}
	}
	if r.URL.Query().Get("saved") == "1" {
		data.Message = "Band saved."
	}

	renderRatesPage(w, data)
}

func renderRatesPage(w http.ResponseWriter, data ratesPageData) {
	tmpl := template.Must(template.New("rates").Parse(ratesHTML))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		log.Println("failed to render rates page:", err)
	}
}

const ratesHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>Shipping Rates</title>
  <style>
    :root {
      --bg: #f3f5f8;
      --card: #ffffff;
      --text: #1d1f23;
      --muted: #6b7280;
      --border: #e5e7eb;
      --accent: #2563eb;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: "Source Sans 3", "Segoe UI", "Helvetica Neue", Arial, sans-serif;
      background: var(--bg);
      color: var(--text);
    }
    .wrap { max-width: 960px; margin: 40px auto; padding: 0 20px; }
    .card {
      background: var(--card);
      border: 1px solid var(--border);
      border-radius: 10px;
      box-shadow: 0 12px 30px rgba(15, 23, 42, 0.08);
      padding: 28px;
      margin-bottom: 20px;
    }
    h1 { font-size: 20px; margin: 0 0 18px; }
    label { font-size: 13px; font-weight: 600; display: block; margin-bottom: 6px; }
    input[type="text"], input[type="number"], select {
      width: 100%;
      border: 1px solid var(--border);
      border-radius: 6px;
      padding: 8px 10px;
      font-size: 14px;
      margin-bottom: 12px;
    }
    table { width: 100%; border-collapse: collapse; font-size: 14px; }
    th, td { text-align: left; border-bottom: 1px solid var(--border); padding: 8px; }
    .grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 12px; }
    button {
      border: 0;
      background: var(--accent);
      color: white;
      padding: 10px 16px;
      border-radius: 6px;
      font-weight: 600;
      cursor: pointer;
    }
    .hint { font-size: 12px; color: var(--muted); }
    .message { margin-top: 12px; color: #0f766e; font-size: 13px; }
  </style>
</head>
<body>
  <div class="wrap">
    <div class="card">
      <h1>Destinations</h1>
      <form method="get" action="/admin/rates">
        <label for="country">Country</label>
        <select id="country" name="country" onchange="this.form.submit()">
          {{range .Countries}}
          <option value="{{.}}" {{if eq . $.Selected}}selected{{end}}>{{.}}</option>
          {{end}}
        </select>
      </form>
      <form method="post" action="/admin/rates/countries">
        <label for="name">Add country</label>
        <input id="name" name="name" type="text" placeholder="Country name">
        <button type="submit">Add</button>
      </form>
    </div>

    {{if .Selected}}
    <div class="card">
      <h1>Weight bands for {{.Selected}}</h1>
      <table>
        <thead>
          <tr>
            <th>Band</th>
            <th>Up to (kg)</th>
            <th>Parcel economy</th>
            <th>Parcel express</th>
            <th>Document economy</th>
            <th>Document express</th>
          </tr>
        </thead>
        <tbody>
          {{if .Bands}}
            {{range .Bands}}
            <tr>
              <td>{{.Label}}</td>
              <td>{{.WeightKg}}</td>
              <td>{{.NdEconomy}}</td>
              <td>{{.NdExpress}}</td>
              <td>{{.DocEconomy}}</td>
              <td>{{.DocExpress}}</td>
            </tr>
            {{end}}
          {{else}}
            <tr><td colspan="6" class="hint">No bands configured yet.</td></tr>
          {{end}}
        </tbody>
      </table>
    </div>

    <div class="card">
      <h1>Add / update band</h1>
      <form method="post" action="/admin/rates/countries/{{.Selected}}/bands">
        <label for="label">Band label</label>
        <input id="label" name="label" type="text" placeholder="e.g. 0-2kg" required>
        <label for="weight_kg">Upper weight (kg)</label>
        <input id="weight_kg" name="weight_kg" type="number" step="0.1" min="0.1" required>
        <div class="grid">
          <div>
            <label>Parcel economy price</label>
            <input name="nd_economy_price" type="number" step="1" min="0">
            <label><input type="checkbox" name="nd_economy_enabled" value="1"> enabled</label>
          </div>
          <div>
            <label>Parcel express price</label>
            <input name="nd_express_price" type="number" step="1" min="0">
            <label><input type="checkbox" name="nd_express_enabled" value="1"> enabled</label>
          </div>
          <div>
            <label>Document economy price</label>
            <input name="doc_economy_price" type="number" step="1" min="0">
            <label><input type="checkbox" name="doc_economy_enabled" value="1"> enabled</label>
          </div>
          <div>
            <label>Document express price</label>
            <input name="doc_express_price" type="number" step="1" min="0">
            <label><input type="checkbox" name="doc_express_enabled" value="1"> enabled</label>
          </div>
        </div>
        <button type="submit">Save band</button>
        {{if .Message}}<div class="message">{{.Message}}</div>{{end}}
      </form>
    </div>
    {{end}}
  </div>
</body>
</html>`
