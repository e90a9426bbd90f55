package helpers

import (
	"strconv"

	"loomria-api-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthenticatedUserID reads the caller identity forwarded by the auth
// gateway. Session handling itself lives outside this service.
func AuthenticatedUserID(c *gin.Context) (primitive.ObjectID, error) {
	raw := c.GetHeader("X-User-Id")
	if raw == "" {
		return primitive.NilObjectID, errors.New("missing authenticated user id")
	}

	userID, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "invalid authenticated user id")
	}

	return userID, nil
}

func GetPaginationArgs(c *gin.Context) util.PaginationArgs {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	sort := c.DefaultQuery("sort", "created_at_desc")

	return util.PaginationArgs{
		Limit: limit,
		Skip:  skip,
		Sort:  sort,
	}
}
