package catalog

import "gopkg.in/yaml.v3"

// InfoFileName is the metadata file stored in each designer directory.
const InfoFileName = "info.yaml"

// DesignerAvatar references the thumbnail stored next to the metadata file.
type DesignerAvatar struct {
	FileName string `yaml:"file_name"`
}

// DesignerInfo is the structured record for one designer. Serialized key
// order follows field order, so the fields must not be reordered.
type DesignerInfo struct {
	Designer string         `yaml:"designer"`
	Link     string         `yaml:"link"`
	Avatar   DesignerAvatar `yaml:"avatar"`
}

// NewDesignerInfo builds the record written on every sync. Link is
// reserved and always empty at creation.
func NewDesignerInfo(name, avatarFileName string) DesignerInfo {
	return DesignerInfo{
		Designer: name,
		Avatar:   DesignerAvatar{FileName: avatarFileName},
	}
}

// Marshal renders the record as stable UTF-8 text: identical input yields
// byte-identical output across runs.
func (i DesignerInfo) Marshal() ([]byte, error) {
	return yaml.Marshal(i)
}
