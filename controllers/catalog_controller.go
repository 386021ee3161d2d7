package controllers

import (
	"strconv"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/pkg/resp"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/repository"
	"github.com/gin-gonic/gin"
)

type CatalogController struct{ Repo *repository.CatalogRepository }

func NewCatalogController(r *repository.CatalogRepository) *CatalogController {
	return &CatalogController{Repo: r}
}

// GET /products?category=
func (h *CatalogController) Products(c *gin.Context) {
	items, err := h.Repo.ListProducts(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /restaurants
func (h *CatalogController) Restaurants(c *gin.Context) {
	items, err := h.Repo.ListRestaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /restaurants/:id — ร้าน + เมนู
func (h *CatalogController) RestaurantDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	rest, err := h.Repo.GetRestaurant(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	foods, err := h.Repo.ListFoods(rest.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest, "foods": foods})
}
