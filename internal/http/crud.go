package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/database/crud"
)

// CrudStore is the repository surface a CrudController needs.
type CrudStore[T crud.Entity] interface {
	List() ([]T, error)
	GetByID(id uint) (*T, error)
	Create(entity *T) error
	Replace(id uint, entity *T) error
	DeleteByID(id uint) error
}

// CrudController serves the five-operation contract for one entity
// type. All catalog controllers are instances of this template; the
// only per-entity behavior is the optional validate hook.
type CrudController[T crud.Entity] struct {
	store    CrudStore[T]
	name     string // singular, used in error messages
	basePath string // e.g. "/api/authors"
	validate func(entity *T) error
}

func NewCrudController[T crud.Entity](store CrudStore[T], name, basePath string) *CrudController[T] {
	return &CrudController[T]{
		store:    store,
		name:     name,
		basePath: basePath,
	}
}

// WithValidation attaches a hook run on create and replace bodies.
// A non-nil return is surfaced as a 400.
func (controller *CrudController[T]) WithValidation(validate func(entity *T) error) *CrudController[T] {
	controller.validate = validate
	return controller
}

// RegisterRoutes wires the controller under its base path.
func (controller *CrudController[T]) RegisterRoutes(router *gin.Engine) {
	router.GET(controller.basePath, controller.List)
	router.GET(controller.basePath+"/:id", controller.Get)
	router.POST(controller.basePath, controller.Create)
	router.PUT(controller.basePath+"/:id", controller.Replace)
	router.DELETE(controller.basePath+"/:id", controller.Delete)
}

func (controller *CrudController[T]) List(c *gin.Context) {
	rows, err := controller.store.List()
	if err != nil {
		if err == crud.ErrStoreUnavailable {
			respondStoreUnavailable(c)
			return
		}
		respondInternalError(c, err, controller.name)
		return
	}
	if rows == nil {
		rows = []T{}
	}
	c.JSON(http.StatusOK, rows)
}

func (controller *CrudController[T]) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	row, err := controller.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, controller.name, id)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (controller *CrudController[T]) Create(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		respondBadRequest(c, "invalid "+controller.name+" payload: "+err.Error())
		return
	}
	if controller.validate != nil {
		if err := controller.validate(&entity); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
	}

	if err := controller.store.Create(&entity); err != nil {
		respondStoreError(c, err, controller.name, entity.GetID())
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", controller.basePath, entity.GetID()))
	c.JSON(http.StatusCreated, entity)
}

func (controller *CrudController[T]) Replace(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		respondBadRequest(c, "invalid "+controller.name+" payload: "+err.Error())
		return
	}
	if entity.GetID() != id {
		respondBadRequest(c, fmt.Sprintf("%s id in body does not match id %d", controller.name, id))
		return
	}
	if controller.validate != nil {
		if err := controller.validate(&entity); err != nil {
			respondBadRequest(c, err.Error())
			return
		}
	}

	if err := controller.store.Replace(id, &entity); err != nil {
		respondStoreError(c, err, controller.name, id)
		return
	}
	c.Status(http.StatusNoContent)
}

func (controller *CrudController[T]) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.DeleteByID(id); err != nil {
		respondStoreError(c, err, controller.name, id)
		return
	}
	c.Status(http.StatusNoContent)
}
