package pages

import (
	"fmt"

	"aquarium-catalog/internal/domain/species"
)

// Subtítulo cuando falta el parámetro name.
const SubtitleError = "Error"

func msgLoadingList(k species.Kind) string {
	return fmt.Sprintf("Loading %s species...", k.Noun())
}

func msgEmptyList(k species.Kind) string {
	return fmt.Sprintf("No %s species found in the database.", k.Noun())
}

func msgListFailed(k species.Kind, err error) string {
	return fmt.Sprintf("Failed to load %s species. (%s)", k.Noun(), err.Error())
}

func msgNameMissing(k species.Kind) string {
	return fmt.Sprintf("%s species name not provided in URL.", k.Label())
}

func msgLoadingDetail(name string) string {
	return fmt.Sprintf("Loading details for %s...", name)
}

func msgNotFound(k species.Kind, name string) string {
	return fmt.Sprintf("%s species \"%s\" not found.", k.Label(), name)
}

func msgDetailFailed(name string, err error) string {
	return fmt.Sprintf("Failed to load details for %s. (%s)", name, err.Error())
}
