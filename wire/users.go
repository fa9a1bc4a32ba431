package wire

import (
	"database/sql"

	"pdvstar/models"
)

const UserColumns = "id, name, phone, email, avatar, following, role, space_name, organizer_name, created_at"

type UserRow struct {
	ID            string
	Name          sql.NullString
	Phone         sql.NullString
	Email         sql.NullString
	Avatar        sql.NullString
	Following     []byte
	Role          sql.NullString
	SpaceName     sql.NullString
	OrganizerName sql.NullString
	CreatedAt     sql.NullTime
}

func (r *UserRow) Fields() []any {
	return []any{
		&r.ID, &r.Name, &r.Phone, &r.Email, &r.Avatar, &r.Following, &r.Role,
		&r.SpaceName, &r.OrganizerName, &r.CreatedAt,
	}
}

func UserToRow(u models.User) map[string]any {
	row := map[string]any{
		"name":      u.Name,
		"phone":     u.Phone,
		"email":     u.Email,
		"following": jsonList(u.Following),
		"role":      defaultString(u.Role, models.RoleUser),
	}
	if u.Avatar != "" {
		row["avatar"] = u.Avatar
	}
	if u.SpaceName != "" {
		row["space_name"] = u.SpaceName
	}
	if u.OrganizerName != "" {
		row["organizer_name"] = u.OrganizerName
	}
	return row
}

func UserPatchToRow(p models.UserPatch) map[string]any {
	row := map[string]any{}
	if p.Name != nil {
		row["name"] = *p.Name
	}
	if p.Phone != nil {
		row["phone"] = *p.Phone
	}
	if p.Email != nil {
		row["email"] = *p.Email
	}
	if p.Avatar != nil {
		row["avatar"] = *p.Avatar
	}
	if p.Following != nil {
		row["following"] = jsonList(*p.Following)
	}
	if p.Role != nil {
		row["role"] = *p.Role
	}
	if p.SpaceName != nil {
		row["space_name"] = *p.SpaceName
	}
	if p.OrganizerName != nil {
		row["organizer_name"] = *p.OrganizerName
	}
	return row
}

func UserFromRow(r UserRow) models.User {
	return models.User{
		ID:            r.ID,
		Name:          r.Name.String,
		Phone:         r.Phone.String,
		Email:         r.Email.String,
		Avatar:        r.Avatar.String,
		Following:     listFromJSON(r.Following),
		Role:          defaultString(r.Role.String, models.RoleUser),
		SpaceName:     r.SpaceName.String,
		OrganizerName: r.OrganizerName.String,
		CreatedAt:     r.CreatedAt.Time,
	}
}
