// Package catalog turns a directory of raw crawl CSV extracts into one
// normalized, deduplicated product catalog file.
package catalog

// KeepColumns is the fixed, ordered allow-list of fields retained from raw
// extracts. Listing and detail pages are scraped separately, so most fields
// exist in a plain and a detail_ flavor; anything outside this list is
// dropped during projection.
var KeepColumns = []string{
	"sku", "name", "brand", "url_slug", "product_url",
	"price", "sale_price", "discount_percentage",
	"rating_value", "rating_count", "is_buyable", "is_bestseller",
	"deal_tag_text", "flags", "estimated_delivery_date",
	"detail_product_title", "detail_brand", "detail_feature_bullets",
	"detail_breadcrumbs",
	"detail_category_code", "detail_all_specifications_json", "detail_all_images_json",
	"detail_brand_rating", "detail_is_collection_eligible",
	"detail_available_colors", "detail_color_variants_json", "detail_variant_sku", "detail_size",
	"detail_fbt_count", "detail_fbt_products_json",
	"detail_price", "detail_currency", "detail_sale_price", "detail_stock",
	"detail_is_buyable", "detail_is_bestseller",
	"detail_store_name", "detail_partner_code", "detail_seller_rating",
	"detail_seller_rating_count", "detail_seller_positive_rating",
	"detail_seller_as_described_rate",
	"detail_estimated_delivery", "detail_estimated_delivery_date",
	"detail_shipping_fee_message", "detail_is_marketplace",
	"detail_is_global", "detail_is_free_delivery",
	"detail_flags_json", "detail_bnpl_available", "detail_cashback_available",
}

// ImageColumns is the fixed superset of fields that may hold an image URL,
// in the order their URLs are collected. Listing images come first, then
// detail-page images. Which of these actually occur is detected once per
// batch from the first input file's header.
var ImageColumns = []string{
	"image_1", "image_2", "image_3", "image_4", "image_5",
	"image_6", "image_7", "image_8", "image_9", "image_10",
	"detail_image_1", "detail_image_2", "detail_image_3",
	"detail_image_4", "detail_image_5",
}

// Field names with pipeline-level meaning.
const (
	// BreadcrumbColumn is the free-text category path on detail pages.
	BreadcrumbColumn = "detail_breadcrumbs"

	// VariantKeyColumn is the preferred dedup key; FallbackKeyColumn is
	// used when no input file carried variant identifiers.
	VariantKeyColumn  = "detail_variant_sku"
	FallbackKeyColumn = "sku"
)

// Derived column names, appended after the allow-listed columns.
const (
	AllImagesColumn  = "all_images"
	ImageCountColumn = "image_count"
)

// NumCategories is how many levels of the breadcrumb hierarchy are kept.
const NumCategories = 4

// CategoryColumns are the derived category columns, category_1..category_4.
var CategoryColumns = []string{"category_1", "category_2", "category_3", "category_4"}

// DerivedColumns is every derived column in output order.
var DerivedColumns = append([]string{AllImagesColumn, ImageCountColumn}, CategoryColumns...)
