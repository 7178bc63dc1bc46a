// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// GoCartKeeper client screens.
//
// All Msg* constants are human-readable status strings shown in the terminal
// UI status line or written into log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording throughout
// the client.
package app

const (
	// MsgInvalidProduct is shown when a product handed to the cart or
	// wishlist fails validation (missing id, empty name, negative price).
	MsgInvalidProduct = "некорректный товар"

	// MsgStorageBusy is shown when the local database is locked by another
	// writer and the operation may succeed if repeated.
	MsgStorageBusy = "хранилище занято, повторите попытку"

	// MsgStorageFailure is shown when a local database operation failed for
	// a non-transient reason.
	MsgStorageFailure = "ошибка локального хранилища"

	// MsgCatalogUnavailable is shown when the remote catalog could not be
	// fetched; the cached catalog stays usable.
	MsgCatalogUnavailable = "каталог недоступен, показаны сохранённые товары"

	// MsgNetworkUnavailable is shown when the catalog host cannot be reached
	// at all (DNS failure, refused connection, timeout).
	MsgNetworkUnavailable = "отсутствует сеть или сервер каталога недоступен"

	// MsgNothingSelected is shown when an action needs a selected row and
	// the list is empty.
	MsgNothingSelected = "нет выбранного товара"

	// MsgCartEmpty is shown when a cart-wide action is requested on an empty
	// cart.
	MsgCartEmpty = "корзина пуста"

	// MsgCartCleared confirms that every cart line has been removed.
	MsgCartCleared = "корзина очищена"

	// MsgCartUpdated confirms a committed cart quantity change.
	MsgCartUpdated = "корзина обновлена"

	// MsgWishlistAdded confirms that a product was put on the wishlist.
	MsgWishlistAdded = "добавлено в избранное"

	// MsgWishlistRemoved confirms that a product was taken off the wishlist.
	MsgWishlistRemoved = "удалено из избранного"

	// MsgSummaryCopied confirms that the cart summary was copied to the
	// system clipboard.
	MsgSummaryCopied = "итог корзины скопирован"

	// MsgCatalogRefreshed confirms a successful manual catalog refresh.
	MsgCatalogRefreshed = "каталог обновлён"
)
