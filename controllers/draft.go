// controllers/draft.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"retrofit-backend/config"
	"retrofit-backend/models"
	"retrofit-backend/services"
	"retrofit-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DraftController serves the five-step quote wizard. Drafts live in the
// injected in-memory store until the terminal save turns them into quote
// records.
type DraftController struct {
	Store *services.DraftStore
}

func NewDraftController(store *services.DraftStore) *DraftController {
	return &DraftController{Store: store}
}

// SetItemPriceInput selects one of the three pricing modes of the cost
// step: the always-visible direct cost field, a quick-select preset, or the
// custom per-unit rate.
type SetItemPriceInput struct {
	Mode        string   `json:"mode" binding:"required,oneof=direct preset custom"`
	Rate        *float64 `json:"rate"`
	PresetIndex *int     `json:"presetIndex"`
}

func (ctl *DraftController) draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid draft ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (ctl *DraftController) itemID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return uuid.Nil, false
	}
	return id, true
}

// CreateDraft opens a new wizard session
func (ctl *DraftController) CreateDraft(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	draft := ctl.Store.Create(userUUID)
	c.JSON(http.StatusCreated, draft)
}

// GetDraft returns the current wizard state
func (ctl *DraftController) GetDraft(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	draftID, ok := ctl.draftID(c)
	if !ok {
		return
	}

	draft, err := ctl.Store.Get(userUUID, draftID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Advance merges the submitted step data and moves the wizard forward. On
// validation failure the wizard stays on its step and the field errors are
// returned.
func (ctl *DraftController) Advance(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	draftID, ok := ctl.draftID(c)
	if !ok {
		return
	}

	var input services.AdvanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var fieldErrs services.FieldErrors
	draft, err := ctl.Store.Mutate(userUUID, draftID, func(d *models.QuoteDraft) error {
		fieldErrs = services.Advance(d, input)
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
		return
	}
	if len(fieldErrs) > 0 {
		utils.RespondWithFieldErrors(c, fieldErrs)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Retreat moves the wizard one step back. Backing out of the first step
// discards the draft.
func (ctl *DraftController) Retreat(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	draftID, ok := ctl.draftID(c)
	if !ok {
		return
	}

	exited := false
	draft, err := ctl.Store.Mutate(userUUID, draftID, func(d *models.QuoteDraft) error {
		exited = services.Retreat(d)
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
		return
	}

	if exited {
		ctl.Store.Delete(userUUID, draftID)
		c.JSON(http.StatusOK, gin.H{"exited": true})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// AddItem appends a new default line item
func (ctl *DraftController) AddItem(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	draftID, ok := ctl.draftID(c)
	if !ok {
		return
	}

	var added models.LineItem
	draft, err := ctl.Store.Mutate(userUUID, draftID, func(d *models.QuoteDraft) error {
		added = services.AddItem(d)
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": added, "draft": draft})
}

// UpdateItem changes line item fields and recomputes the derived area
func (ctl *DraftController) UpdateItem(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	draftID, ok := ctl.draftID(c)
	if !ok {
		return
	}
	itemID, ok := ctl.itemID(c)
	if !ok {
		return
	}

	var input services.ItemUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var updated models.LineItem
	_, err := ctl.Store.Mutate(userUUID, draftID, func(d *models.QuoteDraft) error {
		item, found := services.UpdateItem(d, itemID, input)
		if !found {
			return errors.New("item not found")
		}
		updated = item
		return nil
	})
	if err != nil {
		if errors.Is(err, services.ErrDraftNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
		} else {
			utils.RespondWithError(c, http.StatusNotFound, "Item not found")
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RemoveItem deletes a line item by its stable id
func (ctl *DraftController) RemoveItem(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	draftID, ok := ctl.draftID(c)
	if !ok {
		return
	}
	itemID, ok := ctl.itemID(c)
	if !ok {
		return
	}

	_, err := ctl.Store.Mutate(userUUID, draftID, func(d *models.QuoteDraft) error {
		if !services.RemoveItem(d, itemID) {
			return errors.New("item not found")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, services.ErrDraftNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
		} else {
			utils.RespondWithError(c, http.StatusNotFound, "Item not found")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// SetItemPrice assigns a price to one line item
func (ctl *DraftController) SetItemPrice(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	draftID, ok := ctl.draftID(c)
	if !ok {
		return
	}
	itemID, ok := ctl.itemID(c)
	if !ok {
		return
	}

	var input SetItemPriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var options []services.PriceOption
	if input.Mode == "preset" {
		if input.PresetIndex == nil {
			utils.RespondWithError(c, http.StatusBadRequest, "presetIndex is required for preset pricing")
			return
		}
		options = services.PriceOptions(userMaterials(userUUID))
		if *input.PresetIndex < 0 || *input.PresetIndex >= len(options) {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown preset")
			return
		}
	} else if input.Rate == nil || *input.Rate < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "A non-negative rate is required")
		return
	}

	var updated models.LineItem
	_, err := ctl.Store.Mutate(userUUID, draftID, func(d *models.QuoteDraft) error {
		item := d.Item(itemID)
		if item == nil {
			return errors.New("item not found")
		}
		switch input.Mode {
		case "preset":
			services.ApplyPreset(item, options[*input.PresetIndex])
		case "custom":
			services.ApplyCustomRate(item, *input.Rate)
		default:
			services.ApplyDirectCost(item, *input.Rate)
		}
		updated = *item
		return nil
	})
	if err != nil {
		if errors.Is(err, services.ErrDraftNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
		} else {
			utils.RespondWithError(c, http.StatusNotFound, "Item not found")
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetTotals returns the derived cost breakdown for the draft
func (ctl *DraftController) GetTotals(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	draftID, ok := ctl.draftID(c)
	if !ok {
		return
	}

	draft, err := ctl.Store.Get(userUUID, draftID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
		return
	}
	c.JSON(http.StatusOK, services.ComputeTotals(draft.Items, draft.PostalCode != ""))
}

// GetPriceOptions returns the quick-select pricing list for the cost step
func (ctl *DraftController) GetPriceOptions(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.PriceOptions(userMaterials(userUUID)))
}

// SaveDraft checks the wizard is complete, persists the quote record and
// discards the draft.
func (ctl *DraftController) SaveDraft(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	draftID, ok := ctl.draftID(c)
	if !ok {
		return
	}

	draft, err := ctl.Store.Get(userUUID, draftID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
		return
	}

	if errs := services.ValidateSave(&draft); len(errs) > 0 {
		utils.RespondWithFieldErrors(c, errs)
		return
	}

	totals := services.ComputeTotals(draft.Items, draft.PostalCode != "")
	materialCost, laborCost := services.SplitCosts(draft.Items)

	quote := models.Quote{
		UserID:        userUUID,
		ClientName:    draft.ClientName,
		ClientEmail:   draft.ClientEmail,
		ClientPhone:   draft.ClientPhone,
		ProjectName:   draft.EffectiveProjectName(),
		Address:       draft.ProjectAddress,
		PostalCode:    draft.PostalCode,
		SquareFootage: totals.TotalArea,
		MaterialCost:  materialCost,
		LaborCost:     laborCost,
		RebateAmount:  totals.Rebate,
		Amount:        totals.FinalTotal,
		Status:        models.QuoteStatusDraft,
		Notes:         draft.Notes,
	}

	if err := config.DB.Create(&quote).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create quote")
		return
	}

	ctl.Store.Delete(userUUID, draftID)

	c.JSON(http.StatusCreated, quote)
}

// GetInvoicePDF renders the draft as a printable invoice
func (ctl *DraftController) GetInvoicePDF(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	draftID, ok := ctl.draftID(c)
	if !ok {
		return
	}

	draft, err := ctl.Store.Get(userUUID, draftID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	totals := services.ComputeTotals(draft.Items, draft.PostalCode != "")
	company := services.CompanyProfile{
		Name:    user.Company,
		Address: user.CompanyAddress,
		Phone:   user.Phone,
		Email:   user.Email,
	}

	number := "INV-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)
	date := time.Now().Format("01/02/2006")

	invoice := services.BuildInvoice(draft, totals, company, number, date)
	pdf, err := services.GenerateInvoicePDF(invoice)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+number+".pdf\"")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GetShareText returns the short share-sheet summary for the draft
func (ctl *DraftController) GetShareText(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}
	draftID, ok := ctl.draftID(c)
	if !ok {
		return
	}

	draft, err := ctl.Store.Get(userUUID, draftID)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Draft not found")
		return
	}

	totals := services.ComputeTotals(draft.Items, draft.PostalCode != "")
	c.JSON(http.StatusOK, gin.H{"text": services.RenderShareText(draft, totals)})
}

// userMaterials loads the user's active material library, falling back to
// the defaults when the library is empty.
func userMaterials(userID uuid.UUID) []models.Material {
	var materials []models.Material
	err := config.DB.
		Where("user_id = ? AND is_active = true", userID).
		Order("created_at ASC").
		Find(&materials).Error
	if err != nil {
		log.Printf("Failed to load materials for user %s, using defaults: %v", userID, err)
		return models.DefaultMaterials()
	}
	if len(materials) == 0 {
		return models.DefaultMaterials()
	}
	return materials
}
