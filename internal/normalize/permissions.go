// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import "github.com/MKhiriev/go-axios-re/models"

// Permissions normalizes the four permission lists.
func Permissions(raw models.RawPermissions) models.Permissions {
	return models.Permissions{
		RequestsPending:    permissionList(raw.RequestsPending),
		RequestsRejected:   permissionList(raw.RequestsRejected),
		PermissionsPending: permissionList(raw.PermissionsPending),
		PermissionsGranted: permissionList(raw.PermissionsGranted),
	}
}

func permissionList(raw []models.RawPermission) []models.Permission {
	result := make([]models.Permission, 0, len(raw))
	for _, item := range raw {
		result = append(result, permission(item))
	}
	return result
}

func permission(item models.RawPermission) models.Permission {
	return models.Permission{
		ID:         item.ID,
		Dates:      [2]string{item.StartDate, item.EndDate},
		Type:       permissionTypes.Convert(item.Type),
		Hour:       item.Hour,
		Time:       RemoveSeconds(string(item.Time)),
		Reason:     item.Reason,
		Notes:      item.Notes,
		WholeClass: ToBool(item.WholeClass, "True"),
		Counted:    ToBool(item.Counted, "True"),
		Justified:  ToBool(item.Justified, "True"),
		Info: models.PermissionInfo{
			InsertedBy:   item.InsertedBy,
			AnsweredBy:   item.AnsweredBy,
			AnsweredDate: SplitDateTime(item.AnsweredDate),
		},
	}
}
