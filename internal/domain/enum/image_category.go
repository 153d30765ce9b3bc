package enum

// ImageCategory identifies the slot a vehicle photo occupies. All categories
// except "others" hold a single image per vehicle.
type ImageCategory string

const (
	ImageCategoryFrontView     ImageCategory = "frontView"
	ImageCategoryRearView      ImageCategory = "rearView"
	ImageCategoryLeftSideView  ImageCategory = "leftSideView"
	ImageCategoryRightSideView ImageCategory = "rightSideView"
	ImageCategoryInterior      ImageCategory = "interior"
	ImageCategoryEngine        ImageCategory = "engine"
	ImageCategoryDashboard     ImageCategory = "dashboard"
	ImageCategoryOthers        ImageCategory = "others"
)

// SingletonImageCategories lists the categories that hold exactly one image,
// in the order the grouped response presents them.
var SingletonImageCategories = []ImageCategory{
	ImageCategoryFrontView,
	ImageCategoryRearView,
	ImageCategoryLeftSideView,
	ImageCategoryRightSideView,
	ImageCategoryInterior,
	ImageCategoryEngine,
	ImageCategoryDashboard,
}

func (c ImageCategory) Valid() bool {
	if c == ImageCategoryOthers {
		return true
	}
	for _, s := range SingletonImageCategories {
		if c == s {
			return true
		}
	}
	return false
}
